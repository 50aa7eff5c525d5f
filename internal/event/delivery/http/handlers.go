package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"event-announcer/internal/event"
	pkgErrors "event-announcer/pkg/errors"
	"event-announcer/pkg/response"
	"event-announcer/pkg/rrule"
)

// Create godoc
// @Summary     Create an event
// @Description Creates a calendar event, optionally all-day or recurring, and announces it.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body createReq true "Event data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     502  {object} response.Resp "Calendar provider error"
// @Failure     503  {object} response.Resp "Created but not announced"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List upcoming events
// @Description Returns events that have not ended yet, soonest first.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       limit query int false "Max events (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar provider error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListUpcoming(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUpcoming: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// PreviewRRule godoc
// @Summary     Preview a recurrence rule
// @Description Builds the RRULE for the given form fields and lists its first occurrences.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body previewReq true "Rule fields and series start"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/rrule/preview [POST]
func (h *handler) PreviewRRule(c *gin.Context) {
	req, start, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	rule, err := rrule.Build(req.Rule)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()), nil)
		return
	}

	resp := previewResp{RRule: rule, Occurrences: []string{}}
	if rule == "" {
		resp.Occurrences = append(resp.Occurrences, start.Format(timeLayoutFor(req.Start)))
		response.OK(c, resp)
		return
	}

	occurrences, err := rrule.Occurrences(rule, start, req.Count)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()), nil)
		return
	}
	for _, t := range occurrences {
		resp.Occurrences = append(resp.Occurrences, t.Format(timeLayoutFor(req.Start)))
	}

	response.OK(c, resp)
}

// Feed godoc
// @Summary     iCalendar feed
// @Description Upcoming events as an iCalendar (RFC 5545) document.
// @Tags        Events
// @Produce     text/calendar
// @Success     200 {string} string "VCALENDAR"
// @Failure     502 {object} response.Resp "Calendar provider error"
// @Router      /events.ics [GET]
func (h *handler) Feed(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListUpcoming(ctx, event.ListUpcomingInput{Limit: event.MaxListLimit})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUpcoming: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Type", icsContentType)
	c.Status(http.StatusOK)
	if err := encodeFeed(c.Writer, output.Events, h.now()); err != nil {
		h.l.Errorf(ctx, "encodeFeed: %v", err)
	}
}

// timeLayoutFor echoes occurrences back at the precision the start was given in.
func timeLayoutFor(raw string) string {
	if len(raw) == len(dateLayout) {
		return dateLayout
	}
	return "2006-01-02T15:04:05Z07:00"
}
