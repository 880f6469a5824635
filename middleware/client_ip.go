package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// proxyHeaders are consulted in order before falling back to the socket address.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// clientIP is the address the rate limiter and request log key on. For a
// forwarded chain only the first hop counts.
func clientIP(c *gin.Context) string {
	for _, h := range proxyHeaders {
		first, _, _ := strings.Cut(c.GetHeader(h), ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
