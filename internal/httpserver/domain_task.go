package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskdesk/internal/middleware"
	taskHTTP "taskdesk/internal/task/delivery/http"
	taskFirestore "taskdesk/internal/task/repository/firestore"
	taskUC "taskdesk/internal/task/usecase"
)

func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskFirestore.New(srv.firestore, srv.l)
	uc := taskUC.New(repo, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
