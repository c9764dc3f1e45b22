package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskdesk/internal/middleware"
	userHTTP "taskdesk/internal/user/delivery/http"
	userRepository "taskdesk/internal/user/repository"
	userUC "taskdesk/internal/user/usecase"
)

// setupUserDomain wires the user domain onto the already-built repository.
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repo userRepository.Repository) error {
	uc := userUC.New(srv.l, srv.identity, repo)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
