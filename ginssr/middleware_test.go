package ginssr

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ssrkit/ssrclient"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeDoer struct {
	resp *http.Response
	last *http.Request
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.last = req
	resp := f.resp
	if resp == nil {
		resp = &http.Response{StatusCode: 200, Header: http.Header{}, Body: http.NoBody}
	}
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	return resp, nil
}

func TestMiddleware_BindsClient(t *testing.T) {
	doer := &fakeDoer{}

	r := gin.New()
	r.Use(Middleware(ssrclient.Options{}, ssrclient.WithAdapter(doer)))
	r.GET("/page", func(c *gin.Context) {
		client := FromContext(c)
		if client == nil {
			t.Fatal("expected client in context")
		}
		if client.BaseURL() != "http://app.example.com" {
			t.Errorf("base URL = %q", client.BaseURL())
		}
		if _, err := client.Get(c.Request.Context(), "/api/data"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "http://app.example.com/page", nil)
	req.Header.Set("Cookie", "session=abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if doer.last == nil {
		t.Fatal("expected upstream call")
	}
	if got := doer.last.Header.Get("Cookie"); got != "session=abc" {
		t.Errorf("incoming cookie not forwarded, got %q", got)
	}
}

func TestMiddleware_RelaysSetCookieToWriter(t *testing.T) {
	upstream := &http.Response{
		StatusCode: 200,
		Header:     http.Header{"Set-Cookie": []string{"token=xyz; Path=/"}},
		Body:       http.NoBody,
	}
	doer := &fakeDoer{resp: upstream}

	r := gin.New()
	r.Use(Middleware(ssrclient.Options{}, ssrclient.WithAdapter(doer)))
	r.GET("/page", func(c *gin.Context) {
		client := FromContext(c)
		if _, err := client.Get(c.Request.Context(), "/api/login"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "http://app.example.com/page", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Header().Values("Set-Cookie")
	if len(cookies) != 1 || cookies[0] != "token=xyz; Path=/" {
		t.Errorf("Set-Cookie not relayed, got %v", cookies)
	}
}

func TestMiddleware_FactoryFailure(t *testing.T) {
	r := gin.New()
	r.Use(Middleware(ssrclient.Options{DisableDefaultAdapter: true}))
	r.GET("/page", func(c *gin.Context) {
		t.Error("handler should not run when construction fails")
	})

	req := httptest.NewRequest(http.MethodGet, "http://app.example.com/page", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if FromContext(c) != nil {
		t.Error("expected nil client without middleware")
	}
}
