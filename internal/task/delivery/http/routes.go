package http

import (
	"github.com/gin-gonic/gin"

	"taskdesk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every task
// route requires full auth: a verified token that resolves to a stored user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/:taskId", mw.Auth(), h.Detail)
		tasks.POST("", mw.Auth(), h.Create)
		tasks.PUT("/:taskId", mw.Auth(), h.Update)
		tasks.DELETE("/:taskId", mw.Auth(), h.Delete)
	}
}
