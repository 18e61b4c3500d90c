package middleware

import (
	"github.com/gin-gonic/gin"

	"gatherup-api/pkg/response"
)

// Recovery turns panics into 500 responses. Handlers panic on errors
// they cannot map, so this is the single place unknown errors land.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %v", err)
				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
