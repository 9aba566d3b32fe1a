package ssrclient

import (
	"net/http"
	"testing"
	"time"

	"golang.org/x/net/http2"
)

func TestOptionsApplyDefaults(t *testing.T) {
	opts := Options{}
	opts.ApplyDefaults()
	if opts.Timeout != defaultTimeout {
		t.Errorf("expected default timeout, got %v", opts.Timeout)
	}

	opts = Options{Timeout: 5 * time.Second}
	opts.ApplyDefaults()
	if opts.Timeout != 5*time.Second {
		t.Errorf("explicit timeout overwritten: %v", opts.Timeout)
	}
}

func TestOptionsValidate_TLS(t *testing.T) {
	opts := Options{
		Timeout: time.Second,
		TLS:     &TLSConfig{CertFile: "client.pem"},
	}
	if err := opts.Validate(); err == nil {
		t.Error("expected error for cert without key")
	}

	opts.TLS = &TLSConfig{CertFile: "client.pem", KeyFile: "client.key"}
	if err := opts.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuildAdapter_Default(t *testing.T) {
	d, err := buildAdapter(Options{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hc, ok := d.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", d)
	}
	if hc.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", hc.Timeout)
	}
	if _, ok := hc.Transport.(*http.Transport); !ok {
		t.Errorf("expected *http.Transport, got %T", hc.Transport)
	}
}

func TestBuildAdapter_H2C(t *testing.T) {
	d, err := buildAdapter(Options{H2C: true, Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hc := d.(*http.Client)
	tr, ok := hc.Transport.(*http2.Transport)
	if !ok {
		t.Fatalf("expected *http2.Transport, got %T", hc.Transport)
	}
	if !tr.AllowHTTP {
		t.Error("h2c transport must allow cleartext HTTP")
	}
}

func TestBuildAdapter_TLSConfig(t *testing.T) {
	d, err := buildAdapter(Options{
		Timeout: time.Second,
		TLS:     &TLSConfig{SkipVerify: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hc := d.(*http.Client)
	tr := hc.Transport.(*http.Transport)
	if tr.TLSClientConfig == nil || !tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("TLS settings not applied to transport")
	}
}
