package usecase

import (
	"fmt"
	"time"

	"event-announcer/internal/event"
	"event-announcer/pkg/rrule"
)

// recurrence builds the RRULE and EXDATE lines for an admin create.
// A non-repeating event yields no lines and ignores ExDates.
func (uc *implUseCase) recurrence(input event.CreateEventInput, start time.Time) ([]string, error) {
	rule, err := rrule.Build(input.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", event.ErrValidation, err)
	}
	if rule == "" {
		return nil, nil
	}
	if err := rrule.Validate(rule); err != nil {
		return nil, fmt.Errorf("%w: %w", event.ErrValidation, err)
	}

	lines := []string{rule}

	// EXDATE values must match the wall-clock start of each occurrence.
	var exdate string
	if input.AllDay {
		exdate, err = rrule.ExDateAllDay(input.ExDates)
	} else {
		exdate, err = rrule.ExDate(input.ExDates, start.In(uc.loc))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", event.ErrValidation, err)
	}
	if exdate != "" {
		lines = append(lines, exdate)
	}
	return lines, nil
}
