package http

import (
	"io"
	"net/url"
	"time"

	"github.com/emersion/go-ical"

	"event-announcer/internal/model"
)

const (
	icsContentType = "text/calendar; charset=utf-8"
	icsProductID   = "-//event-announcer//events feed//EN"
)

// encodeFeed writes events as a VCALENDAR document.
func encodeFeed(w io.Writer, events []model.Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)

	for _, ev := range events {
		cal.Children = append(cal.Children, newVEvent(ev, stamp).Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}

func newVEvent(ev model.Event, stamp time.Time) *ical.Event {
	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, ev.ID)
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	vevent.Props.SetText(ical.PropSummary, ev.Title)

	setTime(vevent.Props, ical.PropDateTimeStart, ev.Start)
	if !ev.End.Time.IsZero() {
		setTime(vevent.Props, ical.PropDateTimeEnd, ev.End)
	}

	if ev.Location != "" {
		vevent.Props.SetText(ical.PropLocation, ev.Location)
	}
	if ev.Description != "" {
		vevent.Props.SetText(ical.PropDescription, ev.Description)
	}
	if u, err := url.Parse(ev.Link); err == nil && ev.Link != "" {
		vevent.Props.SetURI(ical.PropURL, u)
	}
	return vevent
}

func setTime(props ical.Props, name string, t model.EventTime) {
	if t.AllDay {
		props.SetDate(name, t.Time)
		return
	}
	props.SetDateTime(name, t.Time.UTC())
}
