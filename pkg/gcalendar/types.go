package gcalendar

import (
	"errors"
	"time"
)

const (
	defaultCalendarID = "primary"
	dateLayout        = "2006-01-02"
	statusCancelled   = "cancelled"
	reasonDeleted     = "deleted"
)

// ErrEventNotFound is returned for events that do not exist or were deleted.
var ErrEventNotFound = errors.New("calendar event not found")

// EventTime is either a timed instant or an all-day date.
type EventTime struct {
	Time     time.Time
	AllDay   bool
	TimeZone string // IANA zone reported by or sent to the provider
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Start       EventTime
	End         EventTime
	Timezone    string   // e.g. "America/Indiana/Indianapolis"
	Recurrence  []string // RRULE / EXDATE lines
}

// UpdateEventRequest carries a partial update; nil fields are left untouched.
type UpdateEventRequest struct {
	CalendarID  string
	EventID     string
	Summary     *string
	Description *string
	Location    *string
	Start       *EventTime
	End         *EventTime
	Timezone    string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	Start       EventTime
	End         EventTime
	Recurrence  []string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
