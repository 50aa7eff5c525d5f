package usecase

import (
	"context"
	"errors"
	"fmt"

	"event-announcer/internal/announcement"
	"event-announcer/internal/model"
)

func (uc *implUseCase) Announce(ctx context.Context, event model.Event) (model.Announcement, error) {
	content := Format(event, uc.loc)

	current, found, err := uc.repo.Get(ctx, event.ID)
	if err != nil {
		return model.Announcement{}, fmt.Errorf("%w: %w", announcement.ErrStore, err)
	}

	if found {
		err := uc.chat.EditMessage(ctx, current.ChannelID, current.MessageID, content)
		switch {
		case err == nil:
			return current, nil
		case errors.Is(err, announcement.ErrMessageGone):
			uc.l.Infof(ctx, "announcement.Announce: message %s for event %s is gone, posting a new one", current.MessageID, event.ID)
		default:
			return model.Announcement{}, fmt.Errorf("%w: %w", announcement.ErrChat, err)
		}
	}

	return uc.post(ctx, event.ID, content)
}

// post creates a new announcement and records it. A post the platform
// rejects leaves the event unannounced and unmapped without failing the
// caller; the next reconciliation tries again.
func (uc *implUseCase) post(ctx context.Context, eventID, content string) (model.Announcement, error) {
	created, err := uc.chat.CreateMessage(ctx, uc.channelID, content)
	if errors.Is(err, announcement.ErrChatRejected) {
		uc.l.Warnf(ctx, "announcement.post: channel %s rejected announcement for event %s: %v", uc.channelID, eventID, err)
		return model.Announcement{}, nil
	}
	if err != nil {
		return model.Announcement{}, fmt.Errorf("%w: %w", announcement.ErrChat, err)
	}

	if err := uc.repo.Set(ctx, eventID, created); err != nil {
		return model.Announcement{}, fmt.Errorf("%w: %w", announcement.ErrStore, err)
	}
	return created, nil
}

func (uc *implUseCase) Retract(ctx context.Context, eventID string) error {
	current, found, err := uc.repo.Get(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%w: %w", announcement.ErrStore, err)
	}
	if !found {
		return nil
	}

	if err := uc.chat.DeleteMessage(ctx, current.ChannelID, current.MessageID); err != nil {
		uc.l.Warnf(ctx, "announcement.Retract: delete message %s for event %s: %v", current.MessageID, eventID, err)
	}

	if err := uc.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("%w: %w", announcement.ErrStore, err)
	}
	return nil
}
