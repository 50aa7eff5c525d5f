package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"event-announcer/internal/event"
	"event-announcer/pkg/gcalendar"
)

// DeleteEvent removes the calendar event and retracts its announcement.
// An event that is already gone counts as deleted.
func (uc *implUseCase) DeleteEvent(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := requireText("id", id); err != nil {
		return err
	}

	err := uc.calendar.DeleteEvent(ctx, uc.calendarID, id)
	switch {
	case err == nil:
	case errors.Is(err, gcalendar.ErrEventNotFound):
		uc.l.Infof(ctx, "event.usecase.DeleteEvent: event %s already gone", id)
	default:
		uc.l.Errorf(ctx, "event.usecase.DeleteEvent: calendar.DeleteEvent %s: %v", id, err)
		return fmt.Errorf("%w: %w", event.ErrProvider, err)
	}

	if err := uc.announcer.Retract(ctx, id); err != nil {
		uc.l.Errorf(ctx, "event.usecase.DeleteEvent: announcer.Retract %s: %v", id, err)
		return fmt.Errorf("%w: %w", event.ErrTransientIO, err)
	}
	return nil
}
