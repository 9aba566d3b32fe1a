package ssrclient

import (
	"net/http"
	"strings"

	"github.com/ssrkit/ssrclient/logger"
)

// relayCookies is the response interceptor every client registers at
// construction. It forwards upstream Set-Cookie headers to the bound
// response writer and folds their name=value pairs into the client's own
// Cookie default so later calls on this client resend them. Accumulation is
// append-only: a cookie re-set upstream appears again rather than replacing
// the earlier pair.
func (c *Client) relayCookies(resp *http.Response) error {
	values := resp.Header.Values("Set-Cookie")
	if len(values) == 0 {
		return nil
	}

	for _, v := range values {
		if c.writer != nil {
			c.writer.Header().Add("Set-Cookie", v)
		}
		c.appendCookie(cookiePair(v))
	}

	c.log.Debug("relayed cookies", logger.Fields("count", len(values)))
	return nil
}

// appendCookie adds a name=value pair to the client's default Cookie header,
// preserving insertion order.
func (c *Client) appendCookie(pair string) {
	if pair == "" || !strings.Contains(pair, "=") {
		return
	}
	if cur := c.defaults["Cookie"]; cur != "" {
		c.defaults["Cookie"] = cur + "; " + pair
	} else {
		c.defaults["Cookie"] = pair
	}
}

// cookiePair extracts the leading name=value pair of a Set-Cookie value,
// dropping attributes such as Path and Expires.
func cookiePair(setCookie string) string {
	if i := strings.Index(setCookie, ";"); i >= 0 {
		setCookie = setCookie[:i]
	}
	return strings.TrimSpace(setCookie)
}
