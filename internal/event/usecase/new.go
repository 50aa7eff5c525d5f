package usecase

import (
	"time"

	"event-announcer/internal/announcement"
	"event-announcer/internal/event"
	pkgLog "event-announcer/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	calendar   event.Calendar
	announcer  announcement.UseCase
	calendarID string
	loc        *time.Location
	now        func() time.Time
}

// Dependencies is assembled once at startup and handed to New.
type Dependencies struct {
	Calendar   event.Calendar
	Announcer  announcement.UseCase
	CalendarID string
	Location   *time.Location // organization timezone for parsing and display
	Now        func() time.Time
}

// New creates a new event UseCase.
func New(l pkgLog.Logger, deps Dependencies) event.UseCase {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:          l,
		calendar:   deps.Calendar,
		announcer:  deps.Announcer,
		calendarID: deps.CalendarID,
		loc:        loc,
		now:        now,
	}
}
