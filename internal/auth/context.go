package auth

import "github.com/gin-gonic/gin"

const identityKey = "taskdesk/identity"

// SetIdentity attaches the verified identity to the request context.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// IdentityFromContext returns the identity attached by the auth middleware.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
