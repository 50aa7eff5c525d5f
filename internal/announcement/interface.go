package announcement

import (
	"context"

	"event-announcer/internal/model"
)

// UseCase reconciles calendar events with their chat announcements.
type UseCase interface {
	// Announce edits the event's existing announcement, or posts a new one
	// and records it when there is none or the old message is gone.
	Announce(ctx context.Context, event model.Event) (model.Announcement, error)

	// Retract deletes the event's announcement message (best effort) and
	// forgets the mapping.
	Retract(ctx context.Context, eventID string) error
}

// Chat is the subset of the chat platform the announcer drives.
type Chat interface {
	CreateMessage(ctx context.Context, channelID, content string) (model.Announcement, error)
	EditMessage(ctx context.Context, channelID, messageID, content string) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}
