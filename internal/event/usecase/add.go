package usecase

import (
	"context"
	"fmt"
	"strings"

	"event-announcer/internal/event"
	"event-announcer/pkg/gcalendar"
)

// AddEvent creates the calendar event and announces it. The calendar event is
// kept when announcing fails.
func (uc *implUseCase) AddEvent(ctx context.Context, input event.AddEventInput) (event.EventOutput, error) {
	p, err := uc.parseAdd(input)
	if err != nil {
		return event.EventOutput{}, err
	}

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     p.title,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Start:       timed(p.start),
		End:         timed(p.end),
		Timezone:    uc.loc.String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.AddEvent: calendar.CreateEvent: %v", err)
		return event.EventOutput{}, providerErr(err)
	}

	return uc.announce(ctx, *created)
}

func (uc *implUseCase) announce(ctx context.Context, created gcalendar.Event) (event.EventOutput, error) {
	ev := toModelEvent(created)

	a, err := uc.announcer.Announce(ctx, ev)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.announce: event %s: %v", ev.ID, err)
		return event.EventOutput{Event: ev}, fmt.Errorf("%w: %w", event.ErrTransientIO, err)
	}

	return event.EventOutput{Event: ev, Announcement: a}, nil
}
