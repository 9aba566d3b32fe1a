package ssrclient

import "net/http"

// RequestInterceptor transforms an outgoing request before dispatch.
// Interceptors run in registration order, after the client's default and
// per-call headers have been applied, so a header set here always wins.
type RequestInterceptor func(*http.Request) error

// ResponseInterceptor observes or transforms a response after dispatch and
// before the body is consumed. Interceptors run in registration order.
type ResponseInterceptor func(*http.Response) error

// UseRequest registers a request interceptor.
func (c *Client) UseRequest(fn RequestInterceptor) {
	c.reqInterceptors = append(c.reqInterceptors, fn)
}

// UseResponse registers a response interceptor.
func (c *Client) UseResponse(fn ResponseInterceptor) {
	c.respInterceptors = append(c.respInterceptors, fn)
}
