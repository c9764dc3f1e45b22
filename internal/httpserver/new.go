package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskdesk/pkg/firestore"
	"taskdesk/pkg/gidentity"
	"taskdesk/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	firestore       *firestore.Client
	identity        gidentity.Provider
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Firestore       *firestore.Client
	Identity        gidentity.Provider
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		firestore:       cfg.Firestore,
		identity:        cfg.Identity,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.firestore == nil {
		return errors.New("firestore client is required")
	}
	if srv.identity == nil {
		return errors.New("identity provider is required")
	}
	return nil
}
