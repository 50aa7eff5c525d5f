package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgDiscord "event-announcer/pkg/discord"
	pkgLog "event-announcer/pkg/log"
	pkgResponse "event-announcer/pkg/response"
)

// interactionTokenTTL is how long Discord accepts edits to a deferred reply.
const interactionTokenTTL = 15 * time.Minute

// HandleInteraction is the Gin handler for the Discord interactions endpoint.
// Command input is validated inline and answered directly. Valid commands get
// a deferred reply within Discord's 3 second window and run in a background
// goroutine that edits the reply when done.
func (h *handler) HandleInteraction(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "discord handler: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	signature := c.GetHeader(pkgDiscord.HeaderSignature)
	timestamp := c.GetHeader(pkgDiscord.HeaderTimestamp)
	if err := pkgDiscord.VerifyInteraction(h.publicKey, signature, timestamp, body); err != nil {
		h.l.Warnf(ctx, "discord handler: signature verification failed: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var in pkgDiscord.Interaction
	if err := json.Unmarshal(body, &in); err != nil {
		h.l.Errorf(ctx, "discord handler: failed to parse interaction: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	switch in.Type {
	case pkgDiscord.InteractionPing:
		c.JSON(http.StatusOK, pong())
		return
	case pkgDiscord.InteractionApplicationCommand:
	default:
		h.l.Infof(ctx, "discord handler: ignoring interaction type %d", in.Type)
		c.JSON(http.StatusOK, ephemeral(replyUnknownCommand))
		return
	}

	if user := in.Invoker(); user != nil {
		if err := h.limiter.Allow(user.ID); err != nil {
			h.l.Warnf(ctx, "discord handler: %v", err)
			c.JSON(http.StatusOK, ephemeral(replyRateLimited))
			return
		}
	}

	var name string
	if in.Data != nil {
		name = in.Data.Name
	}

	run, err := h.prepare(in.Data)
	if err != nil {
		h.l.Infof(ctx, "discord handler: rejected /%s: %v", name, err)
		c.JSON(http.StatusOK, ephemeral(err.Error()))
		return
	}

	// Snapshot what the goroutine needs; the gin context is recycled.
	token, id := in.Token, in.ID

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), interactionTokenTTL)
		defer cancel()
		bgCtx = pkgLog.WithTraceID(bgCtx, uuid.NewString())

		h.l.Infof(bgCtx, "discord handler: running /%s for interaction %s", name, id)
		reply, err := run(bgCtx)
		if err != nil {
			h.l.Errorf(bgCtx, "discord handler: /%s failed: %v", name, err)
			reply = err.Error()
		}

		if err := h.responder.EditOriginalResponse(bgCtx, token, reply); err != nil {
			h.l.Errorf(bgCtx, "discord handler: failed to edit reply for /%s: %v", name, err)
		}
	}()

	c.JSON(http.StatusOK, deferred())
}

type command func(ctx context.Context) (string, error)

// prepare validates a command and returns the pipeline to run for it.
func (h *handler) prepare(d *pkgDiscord.CommandData) (command, error) {
	if d == nil {
		return nil, errUnknownCommand
	}

	switch d.Name {
	case CommandAddEvent:
		input := toAddInput(d)
		if err := h.uc.ValidateAdd(input); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (string, error) {
			out, err := h.uc.AddEvent(ctx, input)
			if err != nil {
				return "", err
			}
			return createdReply(out), nil
		}, nil

	case CommandEditEvent:
		input := toEditInput(d)
		if err := h.uc.ValidateEdit(input); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (string, error) {
			out, err := h.uc.EditEvent(ctx, input)
			if err != nil {
				return "", err
			}
			return updatedReply(out), nil
		}, nil

	case CommandDeleteEvent:
		id, ok := d.StringOption(optionID)
		if !ok {
			return nil, errMissingID
		}
		return func(ctx context.Context) (string, error) {
			if err := h.uc.DeleteEvent(ctx, id); err != nil {
				return "", err
			}
			return deletedReply(id), nil
		}, nil
	}

	return nil, errUnknownCommand
}
