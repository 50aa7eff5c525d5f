package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"event-announcer/internal/model"
	"event-announcer/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockCalendar keeps events in memory and merges updates like the real client.
type mockCalendar struct {
	events map[string]gcalendar.Event
	next   int

	createErr error
	updateErr error
	deleteErr error
	listErr   error

	createCalls int
	getCalls    int
	lastCreate  gcalendar.CreateEventRequest
	lastList    gcalendar.ListEventsRequest
}

func newMockCalendar() *mockCalendar {
	return &mockCalendar{events: map[string]gcalendar.Event{}}
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.createCalls++
	m.lastCreate = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.next++
	id := "evt" + strconv.Itoa(m.next)
	ev := gcalendar.Event{
		ID:          id,
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		HtmlLink:    "https://calendar.google.com/event?eid=" + id,
		Start:       req.Start,
		End:         req.End,
		Recurrence:  req.Recurrence,
	}
	m.events[id] = ev
	return &ev, nil
}

func (m *mockCalendar) GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error) {
	m.getCalls++
	ev, ok := m.events[eventID]
	if !ok {
		return nil, gcalendar.ErrEventNotFound
	}
	return &ev, nil
}

func (m *mockCalendar) UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	ev, ok := m.events[req.EventID]
	if !ok {
		return nil, gcalendar.ErrEventNotFound
	}
	if req.Summary != nil {
		ev.Summary = *req.Summary
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.Location != nil {
		ev.Location = *req.Location
	}
	if req.Start != nil {
		ev.Start = *req.Start
	}
	if req.End != nil {
		ev.End = *req.End
	}
	m.events[req.EventID] = ev
	return &ev, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.events[eventID]; !ok {
		return gcalendar.ErrEventNotFound
	}
	delete(m.events, eventID)
	return nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.lastList = req
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []gcalendar.Event
	for _, ev := range m.events {
		out = append(out, ev)
	}
	return out, nil
}

type mockAnnouncer struct {
	announced map[string]model.Event
	retracted []string

	announceErr error
	retractErr  error
}

func newMockAnnouncer() *mockAnnouncer {
	return &mockAnnouncer{announced: map[string]model.Event{}}
}

func (m *mockAnnouncer) Announce(ctx context.Context, ev model.Event) (model.Announcement, error) {
	if m.announceErr != nil {
		return model.Announcement{}, m.announceErr
	}
	m.announced[ev.ID] = ev
	return model.Announcement{ChannelID: "announce", MessageID: "msg-" + ev.ID}, nil
}

func (m *mockAnnouncer) Retract(ctx context.Context, eventID string) error {
	m.retracted = append(m.retracted, eventID)
	return m.retractErr
}

var errUpstream = errors.New("googleapi: Error 500: backend error")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func strPtr(s string) *string { return &s }
