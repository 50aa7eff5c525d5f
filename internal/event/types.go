package event

import (
	"event-announcer/internal/model"
	"event-announcer/pkg/rrule"
)

// --- UseCase Inputs ---

// AddEventInput carries the raw /addevent options. Times are strings in the
// organization timezone, or RFC 3339 with an explicit offset.
type AddEventInput struct {
	Title       string
	Start       string
	End         string
	Location    string
	Description string
}

// EditEventInput carries the raw /editevent options. Nil fields are left as
// the calendar currently has them.
type EditEventInput struct {
	ID          string
	Title       *string
	Start       *string
	End         *string
	Location    *string
	Description *string
}

// CreateEventInput is the admin create form.
type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	AllDay      bool
	Start       string // date-time, or YYYY-MM-DD when AllDay
	End         string // date-time, or inclusive YYYY-MM-DD when AllDay (defaults to Start)
	Recurrence  rrule.Options
	ExDates     []string // YYYY-MM-DD occurrences to skip
}

type ListUpcomingInput struct {
	Limit int
}

// --- UseCase Outputs ---

type EventOutput struct {
	Event        model.Event
	Announcement model.Announcement
}

type ListUpcomingOutput struct {
	Events []model.Event
}
