package http

import (
	"github.com/gin-gonic/gin"

	"event-announcer/internal/middleware"
)

// RegisterRoutes maps the admin API under rg. Writes need the admin token.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("", mw.AdminAuth(), h.Create)
		events.GET("", h.List)
	}
	rg.POST("/rrule/preview", mw.AdminAuth(), h.PreviewRRule)
}

// RegisterFeed serves the public iCalendar feed.
func RegisterFeed(r gin.IRoutes, h Handler) {
	r.GET("/events.ics", h.Feed)
}
