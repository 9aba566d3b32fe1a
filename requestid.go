package ssrclient

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID returns a request interceptor that injects a unique
// X-Request-Id header when the request does not already carry one.
func RequestID() RequestInterceptor {
	return func(req *http.Request) error {
		if req.Header.Get("X-Request-Id") == "" {
			req.Header.Set("X-Request-Id", uuid.New().String())
		}
		return nil
	}
}
