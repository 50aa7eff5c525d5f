package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"event-announcer/internal/announcement"
	"event-announcer/internal/event"
	"event-announcer/pkg/gcalendar"
	"event-announcer/pkg/rrule"
)

const testZone = "America/Indiana/Indianapolis"

func newTestUseCase(t *testing.T) (*implUseCase, *mockCalendar, *mockAnnouncer) {
	t.Helper()
	if _, err := time.LoadLocation(testZone); err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	cal := newMockCalendar()
	ann := newMockAnnouncer()
	uc := New(&mockLogger{}, Dependencies{
		Calendar:   cal,
		Announcer:  ann,
		CalendarID: "club@group.calendar.google.com",
		Location:   mustLoad(testZone),
		Now:        func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) },
	}).(*implUseCase)
	return uc, cal, ann
}

func kickoffInput() event.AddEventInput {
	return event.AddEventInput{
		Title:    "Kickoff",
		Start:    "2025-09-16T18:00",
		End:      "2025-09-16T19:30",
		Location: "WALC 1018",
	}
}

func TestAddEvent_Kickoff(t *testing.T) {
	uc, cal, ann := newTestUseCase(t)

	out, err := uc.AddEvent(context.Background(), kickoffInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, 9, 16, 22, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 9, 16, 23, 30, 0, 0, time.UTC)
	if !cal.lastCreate.Start.Time.Equal(wantStart) || !cal.lastCreate.End.Time.Equal(wantEnd) {
		t.Errorf("expected %v–%v, got %v–%v", wantStart, wantEnd, cal.lastCreate.Start.Time, cal.lastCreate.End.Time)
	}
	if cal.lastCreate.Timezone != testZone {
		t.Errorf("expected timezone %s, got %s", testZone, cal.lastCreate.Timezone)
	}
	if cal.lastCreate.CalendarID != "club@group.calendar.google.com" {
		t.Errorf("unexpected calendar id %s", cal.lastCreate.CalendarID)
	}
	if _, ok := ann.announced[out.Event.ID]; !ok {
		t.Errorf("expected event %s to be announced", out.Event.ID)
	}
	if out.Announcement.MessageID == "" || out.Event.Link == "" {
		t.Errorf("expected announcement and link in output, got %+v", out)
	}
}

func TestAddEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input event.AddEventInput
	}{
		{"missing title", event.AddEventInput{Title: " ", Start: "2025-09-16T18:00", End: "2025-09-16T19:00"}},
		{"missing start", event.AddEventInput{Title: "x", End: "2025-09-16T19:00"}},
		{"bad end", event.AddEventInput{Title: "x", Start: "2025-09-16T18:00", End: "tomorrow"}},
		{"end before start", event.AddEventInput{Title: "x", Start: "2025-09-16T18:00", End: "2025-09-16T17:00"}},
		{"end equals start", event.AddEventInput{Title: "x", Start: "2025-09-16T18:00", End: "2025-09-16T18:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, cal, _ := newTestUseCase(t)

			if err := uc.ValidateAdd(tt.input); !errors.Is(err, event.ErrValidation) {
				t.Fatalf("ValidateAdd: expected ErrValidation, got %v", err)
			}
			if _, err := uc.AddEvent(context.Background(), tt.input); !errors.Is(err, event.ErrValidation) {
				t.Fatalf("AddEvent: expected ErrValidation, got %v", err)
			}
			if cal.createCalls != 0 {
				t.Errorf("calendar must not be called on invalid input")
			}
		})
	}
}

func TestParseTime_Layouts(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	want := time.Date(2025, 9, 16, 22, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2025-09-16T18:00",
		"2025-09-16T18:00:00",
		"2025-09-16 18:00",
		"2025-09-16T18:00:00-04:00",
		"2025-09-16T22:00:00Z",
	} {
		got, err := uc.parseTime("start", raw)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", raw, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%q: expected %v, got %v", raw, want, got)
		}
	}
}

func TestAddEvent_Errors(t *testing.T) {
	t.Run("provider failure", func(t *testing.T) {
		uc, cal, ann := newTestUseCase(t)
		cal.createErr = errUpstream

		if _, err := uc.AddEvent(context.Background(), kickoffInput()); !errors.Is(err, event.ErrProvider) {
			t.Fatalf("expected ErrProvider, got %v", err)
		}
		if len(ann.announced) != 0 {
			t.Errorf("must not announce when the calendar write failed")
		}
	})

	t.Run("announce failure keeps the calendar event", func(t *testing.T) {
		uc, cal, ann := newTestUseCase(t)
		ann.announceErr = announcement.ErrStore

		out, err := uc.AddEvent(context.Background(), kickoffInput())
		if !errors.Is(err, event.ErrTransientIO) {
			t.Fatalf("expected ErrTransientIO, got %v", err)
		}
		if _, ok := cal.events[out.Event.ID]; !ok || len(cal.events) != 1 {
			t.Errorf("calendar event must not be rolled back")
		}
	})
}

func TestEditEvent_MergesFields(t *testing.T) {
	uc, cal, ann := newTestUseCase(t)
	ctx := context.Background()

	in := kickoffInput()
	in.Description = "Free pizza"
	created, err := uc.AddEvent(ctx, in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := uc.EditEvent(ctx, event.EditEventInput{ID: created.Event.ID, Location: strPtr("WALC 2087")})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	if out.Event.Location != "WALC 2087" {
		t.Errorf("expected new location, got %s", out.Event.Location)
	}
	if out.Event.Title != "Kickoff" || out.Event.Description != "Free pizza" {
		t.Errorf("unspecified fields must be preserved, got %+v", out.Event)
	}
	if !out.Event.Start.Time.Equal(created.Event.Start.Time) {
		t.Errorf("start must be preserved")
	}
	if ann.announced[created.Event.ID].Location != "WALC 2087" {
		t.Errorf("expected re-announce with merged event")
	}
	if cal.getCalls != 0 {
		t.Errorf("no read needed when times are untouched")
	}
}

func TestEditEvent_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		_, err := uc.EditEvent(ctx, event.EditEventInput{ID: "nope", Title: strPtr("x")})
		if !errors.Is(err, event.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		if err := uc.ValidateEdit(event.EditEventInput{}); !errors.Is(err, event.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("lone end before stored start", func(t *testing.T) {
		uc, cal, _ := newTestUseCase(t)
		created, _ := uc.AddEvent(ctx, kickoffInput())

		_, err := uc.EditEvent(ctx, event.EditEventInput{ID: created.Event.ID, End: strPtr("2025-09-16T17:00")})
		if !errors.Is(err, event.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if !cal.events[created.Event.ID].End.Time.Equal(time.Date(2025, 9, 16, 23, 30, 0, 0, time.UTC)) {
			t.Errorf("event must be unchanged")
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		uc, cal, _ := newTestUseCase(t)
		created, _ := uc.AddEvent(ctx, kickoffInput())
		cal.updateErr = errUpstream

		_, err := uc.EditEvent(ctx, event.EditEventInput{ID: created.Event.ID, Title: strPtr("x")})
		if !errors.Is(err, event.ErrProvider) {
			t.Fatalf("expected ErrProvider, got %v", err)
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("twice does not fail", func(t *testing.T) {
		uc, cal, ann := newTestUseCase(t)
		created, _ := uc.AddEvent(ctx, kickoffInput())

		if err := uc.DeleteEvent(ctx, created.Event.ID); err != nil {
			t.Fatalf("first delete: %v", err)
		}
		if err := uc.DeleteEvent(ctx, created.Event.ID); err != nil {
			t.Fatalf("second delete: %v", err)
		}
		if len(cal.events) != 0 {
			t.Errorf("expected calendar event removed")
		}
		if len(ann.retracted) != 2 {
			t.Errorf("expected retract on every delete, got %v", ann.retracted)
		}
	})

	t.Run("provider failure skips retract", func(t *testing.T) {
		uc, cal, ann := newTestUseCase(t)
		cal.deleteErr = errUpstream

		if err := uc.DeleteEvent(ctx, "evt1"); !errors.Is(err, event.ErrProvider) {
			t.Fatalf("expected ErrProvider, got %v", err)
		}
		if len(ann.retracted) != 0 {
			t.Errorf("must not retract when the calendar delete failed")
		}
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		uc, _, ann := newTestUseCase(t)
		ann.retractErr = announcement.ErrStore

		if err := uc.DeleteEvent(ctx, "evt1"); !errors.Is(err, event.ErrTransientIO) {
			t.Fatalf("expected ErrTransientIO, got %v", err)
		}
	})
}

func TestCreateEvent_Recurring(t *testing.T) {
	uc, cal, ann := newTestUseCase(t)

	out, err := uc.CreateEvent(context.Background(), event.CreateEventInput{
		Title: "Weekly meeting",
		Start: "2025-09-15T18:30",
		End:   "2025-09-15T19:30",
		Recurrence: rrule.Options{
			Freq:       rrule.FreqWeekly,
			ByWeekDays: []string{"MO"},
			Count:      10,
		},
		ExDates: []string{"2025-10-13"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"RRULE:FREQ=WEEKLY;BYDAY=MO;COUNT=10",
		"EXDATE;TZID=America/Indiana/Indianapolis:20251013T183000",
	}
	got := cal.lastCreate.Recurrence
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected recurrence %v, got %v", want, got)
	}
	if _, ok := ann.announced[out.Event.ID]; !ok {
		t.Errorf("expected admin-created event to be announced")
	}
}

func TestCreateEvent_AllDay(t *testing.T) {
	uc, cal, _ := newTestUseCase(t)

	_, err := uc.CreateEvent(context.Background(), event.CreateEventInput{
		Title:  "Career fair",
		AllDay: true,
		Start:  "2025-10-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := cal.lastCreate
	if !req.Start.AllDay || !req.End.AllDay {
		t.Fatalf("expected all-day times, got %+v", req)
	}
	if req.Start.Time.Format("2006-01-02") != "2025-10-01" || req.End.Time.Format("2006-01-02") != "2025-10-02" {
		t.Errorf("expected exclusive end date, got %v–%v", req.Start.Time, req.End.Time)
	}
	if len(req.Recurrence) != 0 {
		t.Errorf("expected no recurrence, got %v", req.Recurrence)
	}
}

func TestCreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input event.CreateEventInput
	}{
		{"bad frequency", event.CreateEventInput{Title: "x", Start: "2025-09-15T18:30", End: "2025-09-15T19:30", Recurrence: rrule.Options{Freq: "HOURLY"}}},
		{"bad exdate", event.CreateEventInput{Title: "x", Start: "2025-09-15T18:30", End: "2025-09-15T19:30", Recurrence: rrule.Options{Freq: rrule.FreqDaily}, ExDates: []string{"soon"}}},
		{"all-day end before start", event.CreateEventInput{Title: "x", AllDay: true, Start: "2025-10-02", End: "2025-10-01"}},
		{"all-day bad date", event.CreateEventInput{Title: "x", AllDay: true, Start: "2025-10-02T10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, cal, _ := newTestUseCase(t)
			if _, err := uc.CreateEvent(context.Background(), tt.input); !errors.Is(err, event.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if cal.createCalls != 0 {
				t.Errorf("calendar must not be called on invalid input")
			}
		})
	}
}

func TestListUpcoming(t *testing.T) {
	uc, cal, _ := newTestUseCase(t)
	uc.AddEvent(context.Background(), kickoffInput())

	out, err := uc.ListUpcoming(context.Background(), event.ListUpcomingInput{Limit: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.lastList.MaxResults != event.MaxListLimit {
		t.Errorf("expected limit capped to %d, got %d", event.MaxListLimit, cal.lastList.MaxResults)
	}
	if !cal.lastList.TimeMin.Equal(time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("expected window to start now, got %v", cal.lastList.TimeMin)
	}
	if len(out.Events) != 1 || out.Events[0].Title != "Kickoff" {
		t.Errorf("unexpected events %+v", out.Events)
	}

	uc.ListUpcoming(context.Background(), event.ListUpcomingInput{})
	if cal.lastList.MaxResults != event.DefaultListLimit {
		t.Errorf("expected default limit, got %d", cal.lastList.MaxResults)
	}

	cal.listErr = errUpstream
	if _, err := uc.ListUpcoming(context.Background(), event.ListUpcomingInput{}); !errors.Is(err, event.ErrProvider) {
		t.Errorf("expected ErrProvider, got %v", err)
	}
}

func TestProviderErr(t *testing.T) {
	err := providerErr(gcalendar.ErrEventNotFound)
	if !errors.Is(err, event.ErrNotFound) || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
