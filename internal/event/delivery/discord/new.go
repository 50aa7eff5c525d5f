package discord

import (
	"context"
	"crypto/ed25519"

	"github.com/gin-gonic/gin"

	"event-announcer/internal/event"
	pkgLog "event-announcer/pkg/log"
)

// Handler is the interface for the Discord interactions endpoint.
type Handler interface {
	HandleInteraction(c *gin.Context)
}

// Responder edits the deferred reply of an interaction.
// *pkgDiscord.Client satisfies it.
type Responder interface {
	EditOriginalResponse(ctx context.Context, interactionToken, content string) error
}

type handler struct {
	l         pkgLog.Logger
	uc        event.UseCase
	responder Responder
	publicKey ed25519.PublicKey
	limiter   *rateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	UseCase   event.UseCase
	Responder Responder
	PublicKey ed25519.PublicKey
	// RateLimitPerMin caps commands per user; 0 disables the limit.
	RateLimitPerMin int
}

// New creates a new Discord interactions handler.
func New(l pkgLog.Logger, cfg Config) Handler {
	return &handler{
		l:         l,
		uc:        cfg.UseCase,
		responder: cfg.Responder,
		publicKey: cfg.PublicKey,
		limiter:   newRateLimiter(cfg.RateLimitPerMin),
	}
}
