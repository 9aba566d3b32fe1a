// Package ginssr binds ssrclient to gin: the middleware builds one upstream
// client per handled request, with cookie relay targeting the gin response
// writer, and stores it in the request context for handlers to use.
package ginssr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssrkit/ssrclient"
)

const contextKey = "ssrclient"

// Middleware creates a per-request upstream client and stores it in the gin
// context. Extra factory options are applied after the request/writer
// bindings, so callers can still override the adapter or logger.
func Middleware(opts ssrclient.Options, fopts ...ssrclient.FactoryOption) gin.HandlerFunc {
	return func(c *gin.Context) {
		bound := make([]ssrclient.FactoryOption, 0, len(fopts)+2)
		bound = append(bound,
			ssrclient.WithIncomingRequest(c.Request),
			ssrclient.WithResponseWriter(c.Writer),
		)
		bound = append(bound, fopts...)

		client, err := ssrclient.New(opts, bound...)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "upstream client unavailable",
			})
			return
		}

		c.Set(contextKey, client)
		c.Next()
	}
}

// FromContext returns the client bound to this request, or nil when the
// middleware did not run.
func FromContext(c *gin.Context) *ssrclient.Client {
	if v, ok := c.Get(contextKey); ok {
		if client, ok := v.(*ssrclient.Client); ok {
			return client
		}
	}
	return nil
}
