package model

import "time"

// Event is a calendar event as the provider currently stores it.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	Link        string // provider-hosted page for the event
	Start       EventTime
	End         EventTime
	Recurrence  []string
}

// EventTime is a timed instant or an all-day date. For all-day values only
// the year, month and day of Time are meaningful.
type EventTime struct {
	Time   time.Time
	AllDay bool
}

// Timed returns a timed EventTime.
func Timed(t time.Time) EventTime {
	return EventTime{Time: t}
}

// AllDay returns an all-day EventTime for the calendar date of t.
func AllDay(t time.Time) EventTime {
	return EventTime{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), AllDay: true}
}
