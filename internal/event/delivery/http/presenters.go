package http

import (
	"event-announcer/internal/event"
	"event-announcer/internal/model"
	"event-announcer/pkg/response"
	"event-announcer/pkg/rrule"
)

const (
	dateLayout          = response.DateFormat
	defaultPreviewCount = 5
	maxPreviewCount     = 50
)

// --- Request DTOs ---

type createReq struct {
	Title       string         `json:"title"       binding:"required,max=255"`
	Description string         `json:"description" binding:"max=4000"`
	Location    string         `json:"location"    binding:"max=255"`
	AllDay      bool           `json:"all_day"`
	Start       string         `json:"start"       binding:"required"`
	End         string         `json:"end"`
	Recurrence  *rrule.Options `json:"recurrence"`
	ExDates     []string       `json:"ex_dates"`
}

func (r createReq) toInput() event.CreateEventInput {
	in := event.CreateEventInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		AllDay:      r.AllDay,
		Start:       r.Start,
		End:         r.End,
		ExDates:     r.ExDates,
	}
	if r.Recurrence != nil {
		in.Recurrence = *r.Recurrence
	}
	return in
}

type listReq struct {
	Limit int `form:"limit"`
}

func (r listReq) toInput() event.ListUpcomingInput {
	return event.ListUpcomingInput{Limit: r.Limit}
}

type previewReq struct {
	Rule  rrule.Options `json:"rule"`
	Start string        `json:"start" binding:"required"`
	Count int           `json:"count"`
}

// --- Response DTOs ---

type eventResp struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Link        string   `json:"link"`
	AllDay      bool     `json:"all_day"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Recurrence  []string `json:"recurrence,omitempty"`
}

func (h *handler) newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Link:        ev.Link,
		AllDay:      ev.Start.AllDay,
		Start:       h.formatTime(ev.Start),
		End:         h.formatTime(ev.End),
		Recurrence:  ev.Recurrence,
	}
}

func (h *handler) formatTime(t model.EventTime) string {
	if t.Time.IsZero() {
		return ""
	}
	if t.AllDay {
		return t.Time.Format(dateLayout)
	}
	return t.Time.In(h.loc).Format(response.DateTimeFormat)
}

type announcementResp struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
}

type createResp struct {
	Event        eventResp         `json:"event"`
	Announcement *announcementResp `json:"announcement,omitempty"`
}

func (h *handler) newCreateResp(out event.EventOutput) createResp {
	resp := createResp{Event: h.newEventResp(out.Event)}
	if out.Announcement.MessageID != "" {
		resp.Announcement = &announcementResp{
			ChannelID: out.Announcement.ChannelID,
			MessageID: out.Announcement.MessageID,
		}
	}
	return resp
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(out event.ListUpcomingOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = h.newEventResp(ev)
	}
	return listResp{Events: events}
}

type previewResp struct {
	RRule       string   `json:"rrule"`
	Occurrences []string `json:"occurrences"`
}
