package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"checklist-sync/pkg/response"
)

const HeaderAPIKey = "X-API-Key"

// Auth checks the X-API-Key header: 401 when it is missing, 403 when it is
// wrong. It lets everything through when no key is configured.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.apiKey == "" {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(mw.apiKey)) != 1 {
			mw.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request from %s", c.ClientIP())
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
