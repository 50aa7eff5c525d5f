package event

import (
	"context"

	"event-announcer/pkg/gcalendar"
)

// UseCase runs the event commands: calendar write first, then the announcement.
type UseCase interface {
	// ValidateAdd checks an /addevent command without touching any provider.
	ValidateAdd(input AddEventInput) error
	// ValidateEdit checks an /editevent command without touching any provider.
	ValidateEdit(input EditEventInput) error

	AddEvent(ctx context.Context, input AddEventInput) (EventOutput, error)
	EditEvent(ctx context.Context, input EditEventInput) (EventOutput, error)
	DeleteEvent(ctx context.Context, id string) error

	// CreateEvent is the admin create: timed or all-day, optionally recurring.
	CreateEvent(ctx context.Context, input CreateEventInput) (EventOutput, error)
	ListUpcoming(ctx context.Context, input ListUpcomingInput) (ListUpcomingOutput, error)
}

// Calendar is the calendar provider the use case writes to.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
