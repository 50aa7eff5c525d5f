package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	discordDelivery "event-announcer/internal/event/delivery/discord"
	eventHTTP "event-announcer/internal/event/delivery/http"
	"event-announcer/internal/middleware"
	"event-announcer/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Event domain
	interactionHandler discordDelivery.Handler
	eventHandler       eventHTTP.Handler
	middleware         middleware.Middleware

	readinessProbe func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Event domain
	InteractionHandler discordDelivery.Handler
	EventHandler       eventHTTP.Handler
	Middleware         middleware.Middleware

	// ReadinessProbe reports whether backing stores are reachable. Optional.
	ReadinessProbe func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		interactionHandler: cfg.InteractionHandler,
		eventHandler:       cfg.EventHandler,
		middleware:         cfg.Middleware,
		readinessProbe:     cfg.ReadinessProbe,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
