package usecase

import (
	"strings"
	"time"

	"event-announcer/internal/model"
)

const (
	timedLayout  = "Jan 2, 2006, 3:04 PM"
	allDayLayout = "Jan 2, 2006"
	noLocation   = "TBA"
)

// Format renders the announcement text for event:
//
//	📅 **<title>**
//	🕒 <when>
//	📍 <location or TBA>
//
//	<description>
//
//	<<link>>
//
// The description block is left out when empty. Timed events are shown in loc.
func Format(event model.Event, loc *time.Location) string {
	location := strings.TrimSpace(event.Location)
	if location == "" {
		location = noLocation
	}

	var sb strings.Builder
	sb.WriteString("📅 **" + event.Title + "**\n")
	sb.WriteString("🕒 " + FormatWhen(event.Start, loc) + "\n")
	sb.WriteString("📍 " + location)

	if desc := strings.TrimSpace(event.Description); desc != "" {
		sb.WriteString("\n\n" + desc)
	}

	sb.WriteString("\n\n<" + event.Link + ">")
	return sb.String()
}

// FormatWhen renders a start time with medium date and short time style.
func FormatWhen(t model.EventTime, loc *time.Location) string {
	if t.AllDay {
		return t.Time.Format(allDayLayout)
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.Time.In(loc).Format(timedLayout)
}
