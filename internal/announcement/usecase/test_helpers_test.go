package usecase

import (
	"context"
	"errors"
	"strconv"

	"event-announcer/internal/announcement"
	"event-announcer/internal/model"
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

type mockRepo struct {
	data      map[string]model.Announcement
	getErr    error
	setErr    error
	deleteErr error

	setCalls    int
	deleteCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{data: map[string]model.Announcement{}}
}

func (m *mockRepo) Get(ctx context.Context, eventID string) (model.Announcement, bool, error) {
	if m.getErr != nil {
		return model.Announcement{}, false, m.getErr
	}
	a, ok := m.data[eventID]
	return a, ok, nil
}

func (m *mockRepo) Set(ctx context.Context, eventID string, a model.Announcement) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[eventID] = a
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, eventID string) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.data, eventID)
	return nil
}

type mockChat struct {
	messages map[string]string // message id -> content
	next     int

	createErr error
	editErr   error
	deleteErr error

	createCalls int
	editCalls   int
	deleteCalls int
}

func newMockChat() *mockChat {
	return &mockChat{messages: map[string]string{}}
}

func (m *mockChat) CreateMessage(ctx context.Context, channelID, content string) (model.Announcement, error) {
	m.createCalls++
	if m.createErr != nil {
		return model.Announcement{}, m.createErr
	}
	m.next++
	id := "msg-" + strconv.Itoa(m.next)
	m.messages[id] = content
	return model.Announcement{ChannelID: channelID, MessageID: id}, nil
}

func (m *mockChat) EditMessage(ctx context.Context, channelID, messageID, content string) error {
	m.editCalls++
	if m.editErr != nil {
		return m.editErr
	}
	if _, ok := m.messages[messageID]; !ok {
		return announcement.ErrMessageGone
	}
	m.messages[messageID] = content
	return nil
}

func (m *mockChat) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.messages[messageID]; !ok {
		return announcement.ErrMessageGone
	}
	delete(m.messages, messageID)
	return nil
}

var errNetwork = errors.New("dial tcp: connection refused")
