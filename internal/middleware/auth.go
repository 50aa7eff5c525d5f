package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"event-announcer/pkg/response"
)

const bearerPrefix = "Bearer "

// AdminAuth requires "Authorization: Bearer <admin token>". With no admin
// token configured every request is rejected.
func (m Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || m.adminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.adminToken)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.AdminAuth: rejected %s %s", c.Request.Method, c.Request.URL.Path)
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
