package usecase

import (
	"context"

	"event-announcer/internal/event"
	"event-announcer/internal/model"
	"event-announcer/pkg/gcalendar"
)

// ListUpcoming returns events that have not ended yet, soonest first.
func (uc *implUseCase) ListUpcoming(ctx context.Context, input event.ListUpcomingInput) (event.ListUpcomingOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = event.DefaultListLimit
	}
	if limit > event.MaxListLimit {
		limit = event.MaxListLimit
	}

	items, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    uc.now(),
		MaxResults: int64(limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.ListUpcoming: calendar.ListEvents: %v", err)
		return event.ListUpcomingOutput{}, providerErr(err)
	}

	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		events = append(events, toModelEvent(item))
	}
	return event.ListUpcomingOutput{Events: events}, nil
}
