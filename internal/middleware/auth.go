package middleware

import (
	"github.com/gin-gonic/gin"

	"taskdesk/internal/auth"
	"taskdesk/pkg/response"
)

// Auth verifies the bearer token and requires an existing user profile.
func (m Middleware) Auth() gin.HandlerFunc {
	return m.authWithMode(auth.ModeFull)
}

// AuthSetup verifies the bearer token only. Used by the account-setup route,
// which runs before a profile exists.
func (m Middleware) AuthSetup() gin.HandlerFunc {
	return m.authWithMode(auth.ModeSetup)
}

func (m Middleware) authWithMode(mode auth.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		identity, err := m.verifier.Verify(ctx, c.Request.Header, mode)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.MappedError(c, err)
			return
		}

		auth.SetIdentity(c, identity)
		c.Next()
	}
}
