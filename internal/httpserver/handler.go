package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	eventHTTP "event-announcer/internal/event/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}
	srv.gin.Use(srv.middleware.CORS())

	srv.l.Infof(context.Background(), "HTTP middlewares registered (environment: %s)", srv.environment)
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

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.interactionHandler != nil {
		srv.gin.POST("/interactions", srv.interactionHandler.HandleInteraction)
		srv.l.Infof(ctx, "Discord interactions route registered at POST /interactions")
	} else {
		srv.l.Infof(ctx, "Discord handler not configured, skipping interactions route")
	}

	if srv.eventHandler != nil {
		eventHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.eventHandler, srv.middleware)
		eventHTTP.RegisterFeed(srv.gin, srv.eventHandler)
		srv.l.Infof(ctx, "Event routes registered at /api/v1/events and /events.ics")
	}
}
