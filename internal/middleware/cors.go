package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the configured site origin to call the API from a browser.
// "*" allows any origin. Preflight requests are answered here.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && m.allowedOrigin != "" && (m.allowedOrigin == "*" || origin == m.allowedOrigin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", m.allowedOrigin)
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			h.Set("Access-Control-Max-Age", "600")
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
