package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gatherup-api/pkg/response"
	"gatherup-api/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the token payload on the
// request context for handlers to pick up.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Auth.Verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// InternalKey guards operational endpoints behind a shared secret
// delivered by the scheduler or an operator, never by end users.
func (m Middleware) InternalKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey == "" || c.GetHeader("X-Internal-Key") != m.internalKey {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
