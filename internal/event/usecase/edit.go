package usecase

import (
	"context"
	"strings"

	"event-announcer/internal/event"
	"event-announcer/pkg/gcalendar"
)

// EditEvent merges the supplied fields into the stored event, writes it back
// and refreshes its announcement.
func (uc *implUseCase) EditEvent(ctx context.Context, input event.EditEventInput) (event.EventOutput, error) {
	p, err := uc.parseEdit(input)
	if err != nil {
		return event.EventOutput{}, err
	}
	id := strings.TrimSpace(input.ID)

	// A lone start or end has to be ordered against the stored other half.
	if (p.start == nil) != (p.end == nil) {
		current, err := uc.calendar.GetEvent(ctx, uc.calendarID, id)
		if err != nil {
			return event.EventOutput{}, providerErr(err)
		}
		start, end := current.Start.Time, current.End.Time
		if p.start != nil {
			start = *p.start
		}
		if p.end != nil {
			end = *p.end
		}
		if err := checkOrder(start, end); err != nil {
			return event.EventOutput{}, err
		}
	}

	req := gcalendar.UpdateEventRequest{
		CalendarID:  uc.calendarID,
		EventID:     id,
		Summary:     trimmed(input.Title),
		Description: trimmed(input.Description),
		Location:    trimmed(input.Location),
		Timezone:    uc.loc.String(),
	}
	if p.start != nil {
		t := timed(*p.start)
		req.Start = &t
	}
	if p.end != nil {
		t := timed(*p.end)
		req.End = &t
	}

	updated, err := uc.calendar.UpdateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.EditEvent: calendar.UpdateEvent %s: %v", id, err)
		return event.EventOutput{}, providerErr(err)
	}

	return uc.announce(ctx, *updated)
}
