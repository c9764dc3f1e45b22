package http

import (
	"github.com/gin-gonic/gin"

	"taskdesk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Setup uses
// token-only auth since the caller has no stored profile yet; detail requires
// full auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.POST("", mw.AuthSetup(), h.Setup)
		users.GET("", mw.Auth(), h.Detail)
	}
}
