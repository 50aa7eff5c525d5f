package discord

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"event-announcer/internal/event"
	"event-announcer/internal/model"
	pkgDiscord "event-announcer/pkg/discord"
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

type mockUseCase struct {
	event.UseCase // unimplemented methods panic

	validateErr error
	addErr      error
	deleted     []string
	lastAdd     event.AddEventInput
	lastEdit    event.EditEventInput
}

func (m *mockUseCase) ValidateAdd(input event.AddEventInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", event.ErrValidation)
	}
	return m.validateErr
}

func (m *mockUseCase) ValidateEdit(input event.EditEventInput) error { return m.validateErr }

func (m *mockUseCase) AddEvent(ctx context.Context, input event.AddEventInput) (event.EventOutput, error) {
	m.lastAdd = input
	if m.addErr != nil {
		return event.EventOutput{}, m.addErr
	}
	return event.EventOutput{Event: model.Event{ID: "evt1", Link: "https://cal/evt1"}}, nil
}

func (m *mockUseCase) EditEvent(ctx context.Context, input event.EditEventInput) (event.EventOutput, error) {
	m.lastEdit = input
	return event.EventOutput{Event: model.Event{ID: input.ID, Link: "https://cal/" + input.ID}}, nil
}

func (m *mockUseCase) DeleteEvent(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type reply struct {
	token   string
	content string
}

type mockResponder struct {
	replies chan reply
}

func (m *mockResponder) EditOriginalResponse(ctx context.Context, token, content string) error {
	m.replies <- reply{token: token, content: content}
	return nil
}

type fixture struct {
	router    *gin.Engine
	priv      ed25519.PrivateKey
	uc        *mockUseCase
	responder *mockResponder
}

func newFixture(t *testing.T, ratePerMin int) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	uc := &mockUseCase{}
	responder := &mockResponder{replies: make(chan reply, 4)}

	h := New(&mockLogger{}, Config{
		UseCase:         uc,
		Responder:       responder,
		PublicKey:       pub,
		RateLimitPerMin: ratePerMin,
	})
	r := gin.New()
	r.POST("/interactions", h.HandleInteraction)

	return &fixture{router: r, priv: priv, uc: uc, responder: responder}
}

func (f *fixture) send(t *testing.T, payload any, sign bool) (*httptest.ResponseRecorder, pkgDiscord.InteractionResponse) {
	t.Helper()
	body, _ := json.Marshal(payload)
	ts := "1726524000"

	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader(body))
	if sign {
		sig := ed25519.Sign(f.priv, append([]byte(ts), body...))
		req.Header.Set(pkgDiscord.HeaderSignature, hex.EncodeToString(sig))
	} else {
		req.Header.Set(pkgDiscord.HeaderSignature, strings.Repeat("00", ed25519.SignatureSize))
	}
	req.Header.Set(pkgDiscord.HeaderTimestamp, ts)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp pkgDiscord.InteractionResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (f *fixture) waitReply(t *testing.T) reply {
	t.Helper()
	select {
	case r := <-f.responder.replies:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the deferred reply")
		return reply{}
	}
}

func interactionPayload(name string, opts map[string]string) map[string]any {
	options := []map[string]any{}
	for k, v := range opts {
		options = append(options, map[string]any{"name": k, "type": 3, "value": v})
	}
	return map[string]any{
		"id":     "int-1",
		"type":   2,
		"token":  "tok-1",
		"member": map[string]any{"user": map[string]any{"id": "u-1", "username": "alice"}},
		"data":   map[string]any{"id": "cmd", "name": name, "options": options},
	}
}

func TestHandleInteraction_Signature(t *testing.T) {
	f := newFixture(t, 0)

	w, _ := f.send(t, map[string]any{"type": 1}, false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad signature, got %d", w.Code)
	}

	w, resp := f.send(t, map[string]any{"type": 1}, true)
	if w.Code != http.StatusOK || resp.Type != pkgDiscord.ResponsePong {
		t.Fatalf("expected PONG, got %d %+v", w.Code, resp)
	}
}

func TestHandleInteraction_AddEvent(t *testing.T) {
	f := newFixture(t, 0)

	_, resp := f.send(t, interactionPayload(CommandAddEvent, map[string]string{
		"title":    "Kickoff",
		"start":    "2025-09-16T18:00",
		"end":      "2025-09-16T19:30",
		"location": "WALC 1018",
	}), true)
	if resp.Type != pkgDiscord.ResponseDeferredChannelMessage {
		t.Fatalf("expected deferred response, got %+v", resp)
	}

	r := f.waitReply(t)
	if r.token != "tok-1" {
		t.Errorf("expected reply on interaction token, got %s", r.token)
	}
	if r.content != "Created: https://cal/evt1\nID: `evt1`" {
		t.Errorf("unexpected reply %q", r.content)
	}
	if f.uc.lastAdd.Location != "WALC 1018" || f.uc.lastAdd.Description != "" {
		t.Errorf("unexpected input %+v", f.uc.lastAdd)
	}
}

func TestHandleInteraction_ValidationIsImmediate(t *testing.T) {
	f := newFixture(t, 0)

	_, resp := f.send(t, interactionPayload(CommandAddEvent, map[string]string{"start": "x", "end": "y"}), true)
	if resp.Type != pkgDiscord.ResponseChannelMessage || resp.Data == nil {
		t.Fatalf("expected immediate message, got %+v", resp)
	}
	if !strings.Contains(resp.Data.Content, "title is required") {
		t.Errorf("unexpected content %q", resp.Data.Content)
	}
	if resp.Data.Flags != pkgDiscord.MessageFlagEphemeral {
		t.Errorf("expected ephemeral reply")
	}

	_, resp = f.send(t, interactionPayload(CommandDeleteEvent, nil), true)
	if resp.Type != pkgDiscord.ResponseChannelMessage || !strings.Contains(resp.Data.Content, "id is required") {
		t.Errorf("expected missing id reply, got %+v", resp)
	}
}

func TestHandleInteraction_ErrorReply(t *testing.T) {
	f := newFixture(t, 0)
	f.uc.addErr = fmt.Errorf("%w: googleapi: Error 403: forbidden", event.ErrProvider)

	f.send(t, interactionPayload(CommandAddEvent, map[string]string{"title": "x", "start": "a", "end": "b"}), true)

	r := f.waitReply(t)
	if r.content != f.uc.addErr.Error() {
		t.Errorf("expected error text as reply, got %q", r.content)
	}
}

func TestHandleInteraction_EditAndDelete(t *testing.T) {
	f := newFixture(t, 0)

	f.send(t, interactionPayload(CommandEditEvent, map[string]string{"id": "evt9", "location": "WALC 2087"}), true)
	if r := f.waitReply(t); r.content != "Updated: https://cal/evt9" {
		t.Errorf("unexpected edit reply %q", r.content)
	}
	if f.uc.lastEdit.Location == nil || *f.uc.lastEdit.Location != "WALC 2087" || f.uc.lastEdit.Title != nil {
		t.Errorf("expected only location supplied, got %+v", f.uc.lastEdit)
	}

	f.send(t, interactionPayload(CommandDeleteEvent, map[string]string{"id": "evt9"}), true)
	if r := f.waitReply(t); r.content != "Deleted evt9" {
		t.Errorf("unexpected delete reply %q", r.content)
	}
}

func TestHandleInteraction_UnknownCommand(t *testing.T) {
	f := newFixture(t, 0)

	_, resp := f.send(t, interactionPayload("party", nil), true)
	if resp.Type != pkgDiscord.ResponseChannelMessage || resp.Data.Content != replyUnknownCommand {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestHandleInteraction_RateLimit(t *testing.T) {
	f := newFixture(t, 10) // burst of 1

	f.send(t, interactionPayload(CommandDeleteEvent, map[string]string{"id": "a"}), true)
	f.waitReply(t)

	_, resp := f.send(t, interactionPayload(CommandDeleteEvent, map[string]string{"id": "b"}), true)
	if resp.Type != pkgDiscord.ResponseChannelMessage || resp.Data.Content != replyRateLimited {
		t.Errorf("expected rate limited reply, got %+v", resp)
	}
	if len(f.uc.deleted) != 1 {
		t.Errorf("expected one delete to run, got %v", f.uc.deleted)
	}
}

func TestCommands(t *testing.T) {
	cmds := Commands()
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	required := map[string][]string{}
	for _, c := range cmds {
		for _, o := range c.Options {
			if o.Required {
				required[c.Name] = append(required[c.Name], o.Name)
			}
		}
	}
	if got := strings.Join(required[CommandAddEvent], ","); got != "title,start,end" {
		t.Errorf("unexpected addevent required options %s", got)
	}
	if got := strings.Join(required[CommandEditEvent], ","); got != "id" {
		t.Errorf("unexpected editevent required options %s", got)
	}
}
