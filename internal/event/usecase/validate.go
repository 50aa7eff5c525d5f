package usecase

import (
	"fmt"
	"strings"
	"time"

	"event-announcer/internal/event"
)

type addParams struct {
	title string
	start time.Time
	end   time.Time
}

func (uc *implUseCase) ValidateAdd(input event.AddEventInput) error {
	_, err := uc.parseAdd(input)
	return err
}

func (uc *implUseCase) parseAdd(input event.AddEventInput) (addParams, error) {
	if err := requireText("title", input.Title); err != nil {
		return addParams{}, err
	}
	start, err := uc.parseTime("start", input.Start)
	if err != nil {
		return addParams{}, err
	}
	end, err := uc.parseTime("end", input.End)
	if err != nil {
		return addParams{}, err
	}
	if err := checkOrder(start, end); err != nil {
		return addParams{}, err
	}
	return addParams{title: strings.TrimSpace(input.Title), start: start, end: end}, nil
}

type editParams struct {
	start *time.Time
	end   *time.Time
}

func (uc *implUseCase) ValidateEdit(input event.EditEventInput) error {
	_, err := uc.parseEdit(input)
	return err
}

func (uc *implUseCase) parseEdit(input event.EditEventInput) (editParams, error) {
	if err := requireText("id", input.ID); err != nil {
		return editParams{}, err
	}
	if input.Title != nil {
		if err := requireText("title", *input.Title); err != nil {
			return editParams{}, err
		}
	}

	var p editParams
	if input.Start != nil {
		t, err := uc.parseTime("start", *input.Start)
		if err != nil {
			return editParams{}, err
		}
		p.start = &t
	}
	if input.End != nil {
		t, err := uc.parseTime("end", *input.End)
		if err != nil {
			return editParams{}, err
		}
		p.end = &t
	}
	if p.start != nil && p.end != nil {
		if err := checkOrder(*p.start, *p.end); err != nil {
			return editParams{}, err
		}
	}
	return p, nil
}

type createParams struct {
	title      string
	start      time.Time
	end        time.Time
	allDay     bool
	recurrence []string
}

func (uc *implUseCase) parseCreate(input event.CreateEventInput) (createParams, error) {
	if err := requireText("title", input.Title); err != nil {
		return createParams{}, err
	}
	p := createParams{title: strings.TrimSpace(input.Title), allDay: input.AllDay}

	if input.AllDay {
		start, err := uc.parseDate("start", input.Start)
		if err != nil {
			return createParams{}, err
		}
		end := start
		if strings.TrimSpace(input.End) != "" {
			if end, err = uc.parseDate("end", input.End); err != nil {
				return createParams{}, err
			}
		}
		if end.Before(start) {
			return createParams{}, fmt.Errorf("%w: end must not be before start", event.ErrValidation)
		}
		// The provider's all-day end date is exclusive.
		p.start, p.end = start, end.AddDate(0, 0, 1)
	} else {
		start, err := uc.parseTime("start", input.Start)
		if err != nil {
			return createParams{}, err
		}
		end, err := uc.parseTime("end", input.End)
		if err != nil {
			return createParams{}, err
		}
		if err := checkOrder(start, end); err != nil {
			return createParams{}, err
		}
		p.start, p.end = start, end
	}

	recurrence, err := uc.recurrence(input, p.start)
	if err != nil {
		return createParams{}, err
	}
	p.recurrence = recurrence
	return p, nil
}
