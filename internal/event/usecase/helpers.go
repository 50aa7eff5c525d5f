package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"event-announcer/internal/event"
	"event-announcer/internal/model"
	"event-announcer/pkg/gcalendar"
)

// Wall-clock layouts accepted for command times, interpreted in the
// organization timezone. RFC 3339 with an explicit offset is tried first.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

const dateLayout = "2006-01-02"

func (uc *implUseCase) parseTime(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", event.ErrValidation, field)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, uc.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s %q is not a date-time like 2025-09-16T18:00", event.ErrValidation, field, raw)
}

func (uc *implUseCase) parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", event.ErrValidation, field)
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a date like 2025-09-16", event.ErrValidation, field, raw)
	}
	return t, nil
}

func checkOrder(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end must be after start", event.ErrValidation)
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", event.ErrValidation, field)
	}
	return nil
}

// providerErr classifies a calendar error.
func providerErr(err error) error {
	if errors.Is(err, gcalendar.ErrEventNotFound) {
		return fmt.Errorf("%w: %w", event.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", event.ErrProvider, err)
}

func toModelEvent(e gcalendar.Event) model.Event {
	return model.Event{
		ID:          e.ID,
		Title:       e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Link:        e.HtmlLink,
		Start:       toModelTime(e.Start),
		End:         toModelTime(e.End),
		Recurrence:  e.Recurrence,
	}
}

func toModelTime(t gcalendar.EventTime) model.EventTime {
	if t.AllDay {
		return model.AllDay(t.Time)
	}
	return model.Timed(t.Time)
}

func timed(t time.Time) gcalendar.EventTime {
	return gcalendar.EventTime{Time: t}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
