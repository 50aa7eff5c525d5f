package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON.
// Service account keys are tried first, then OAuth installed-app credentials
// paired with a token.json in the working directory.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromServiceAccount creates a Calendar client from a service account
// email and PEM private key. Literal "\n" sequences in the key are unescaped
// so keys can be passed through single-line environment variables.
func NewClientFromServiceAccount(ctx context.Context, email, privateKey string) (*Client, error) {
	if email == "" || privateKey == "" {
		return nil, errors.New("service account email and private key are required")
	}
	config := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(strings.ReplaceAll(privateKey, `\n`, "\n")),
		Scopes:     []string{calendar.CalendarEventsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start:       toEventDateTime(req.Start, req.Timezone),
		End:         toEventDateTime(req.End, req.Timezone),
		Recurrence:  req.Recurrence,
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return newEvent(created)
}

// GetEvent fetches a single event. Unknown or cancelled events yield ErrEventNotFound.
func (c *Client) GetEvent(ctx context.Context, calID, eventID string) (*Event, error) {
	got, err := c.get(ctx, calID, eventID)
	if err != nil {
		return nil, err
	}
	return newEvent(got)
}

// UpdateEvent reads the current event, overlays the non-nil fields of req and
// writes the merged event back. Fields not supplied keep their stored values.
func (c *Client) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	base, err := c.get(ctx, req.CalendarID, req.EventID)
	if err != nil {
		return nil, err
	}

	if req.Summary != nil {
		base.Summary = *req.Summary
	}
	if req.Description != nil {
		base.Description = *req.Description
	}
	if req.Location != nil {
		base.Location = *req.Location
	}
	if req.Start != nil {
		base.Start = toEventDateTime(*req.Start, req.Timezone)
	}
	if req.End != nil {
		base.End = toEventDateTime(*req.End, req.Timezone)
	}

	updated, err := c.service.Events.Update(calendarID(req.CalendarID), req.EventID, base).Context(ctx).Do()
	if err != nil {
		if isGone(err) {
			return nil, fmt.Errorf("%w: %s", ErrEventNotFound, req.EventID)
		}
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	return newEvent(updated)
}

// DeleteEvent deletes an event. Deleting an event that is already gone
// returns ErrEventNotFound.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil {
		if isGone(err) {
			return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// ListEvents lists single event instances in [TimeMin, TimeMax) ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339))
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		ev, err := newEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, nil
}

func (c *Client) get(ctx context.Context, calID, eventID string) (*calendar.Event, error) {
	got, err := c.service.Events.Get(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil {
		if isGone(err) {
			return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	if got.Status == statusCancelled {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	return got, nil
}

func calendarID(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}

func toEventDateTime(t EventTime, tz string) *calendar.EventDateTime {
	if t.AllDay {
		return &calendar.EventDateTime{Date: t.Time.Format(dateLayout)}
	}
	return &calendar.EventDateTime{
		DateTime: t.Time.Format(time.RFC3339),
		TimeZone: tz,
	}
}

func fromEventDateTime(dt *calendar.EventDateTime) (EventTime, error) {
	if dt == nil {
		return EventTime{}, nil
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return EventTime{}, fmt.Errorf("invalid event dateTime %q: %w", dt.DateTime, err)
		}
		return EventTime{Time: t, TimeZone: dt.TimeZone}, nil
	}
	if dt.Date != "" {
		t, err := time.Parse(dateLayout, dt.Date)
		if err != nil {
			return EventTime{}, fmt.Errorf("invalid event date %q: %w", dt.Date, err)
		}
		return EventTime{Time: t, AllDay: true, TimeZone: dt.TimeZone}, nil
	}
	return EventTime{}, nil
}

func newEvent(e *calendar.Event) (*Event, error) {
	start, err := fromEventDateTime(e.Start)
	if err != nil {
		return nil, err
	}
	end, err := fromEventDateTime(e.End)
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		HtmlLink:    e.HtmlLink,
		Start:       start,
		End:         end,
		Recurrence:  e.Recurrence,
	}, nil
}

// isGone reports whether err is a 404 or a 410 "deleted" answer.
func isGone(err error) bool {
	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return false
	}
	if gErr.Code == http.StatusNotFound || gErr.Code == http.StatusGone {
		return true
	}
	for _, item := range gErr.Errors {
		if item.Reason == reasonDeleted {
			return true
		}
	}
	return false
}
