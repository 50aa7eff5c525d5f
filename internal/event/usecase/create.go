package usecase

import (
	"context"
	"strings"

	"event-announcer/internal/event"
	"event-announcer/pkg/gcalendar"
)

// CreateEvent is the admin create. It is announced like /addevent.
func (uc *implUseCase) CreateEvent(ctx context.Context, input event.CreateEventInput) (event.EventOutput, error) {
	p, err := uc.parseCreate(input)
	if err != nil {
		return event.EventOutput{}, err
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     p.title,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Start:       gcalendar.EventTime{Time: p.start, AllDay: p.allDay},
		End:         gcalendar.EventTime{Time: p.end, AllDay: p.allDay},
		Timezone:    uc.loc.String(),
		Recurrence:  p.recurrence,
	}

	created, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.CreateEvent: calendar.CreateEvent: %v", err)
		return event.EventOutput{}, providerErr(err)
	}

	return uc.announce(ctx, *created)
}
