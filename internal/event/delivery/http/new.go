package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"event-announcer/internal/event"
	"event-announcer/pkg/log"
)

// Handler is the public interface for the admin HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	PreviewRRule(c *gin.Context)
	Feed(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  event.UseCase
	loc *time.Location
	now func() time.Time
}

// New creates a new HTTP handler for the event domain. loc is the
// organization timezone used for rule previews.
func New(l log.Logger, uc event.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
		now: time.Now,
	}
}
