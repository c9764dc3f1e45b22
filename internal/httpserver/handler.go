package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskdesk/internal/auth"
	"taskdesk/internal/middleware"
	"taskdesk/internal/model"
	userFirestore "taskdesk/internal/user/repository/firestore"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the shared auth pipeline and all domain routes.
// The user repository doubles as the verifier's user store, so both domains
// share one view of which users exist.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	userRepo := userFirestore.New(srv.firestore, srv.l)
	verifier := auth.New(srv.l, srv.identity, userRepo)
	mw := middleware.New(srv.l, verifier, srv.rateLimitPerMin)

	api := srv.gin.Group("")
	api.Use(mw.RateLimit(), mw.RequireJSONBody())

	if err := srv.setupUserDomain(ctx, api, mw, userRepo); err != nil {
		return err
	}
	if err := srv.setupTaskDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
