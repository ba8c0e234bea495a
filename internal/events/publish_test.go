package events

import (
	"context"
	"errors"
	"testing"
)

// mockPublisher records SendEvent calls and fails a configurable number of
// times before succeeding.
type mockPublisher struct {
	calls     int
	failUntil int
}

func (m *mockPublisher) Connect(ctx context.Context) error { return nil }
func (m *mockPublisher) Close() error                      { return nil }

func (m *mockPublisher) SendEvent(event Event) error {
	m.calls++
	if m.calls <= m.failUntil {
		return errors.New("socket unavailable")
	}
	return nil
}

func TestPublishWithRetry_NilClientIsNoop(t *testing.T) {
	if err := PublishWithRetry(nil, Event{Type: EventTaskLinked}, 3); err != nil {
		t.Errorf("nil client should be skipped silently, got %v", err)
	}
}

func TestPublishWithRetry_SucceedsFirstTry(t *testing.T) {
	mock := &mockPublisher{}
	if err := PublishWithRetry(mock, Event{Type: EventTaskMoved}, 3); err != nil {
		t.Errorf("PublishWithRetry() = %v, want nil", err)
	}
	if mock.calls != 1 {
		t.Errorf("calls = %d, want 1", mock.calls)
	}
}

func TestPublishWithRetry_RecoversAfterFailure(t *testing.T) {
	mock := &mockPublisher{failUntil: 2}
	if err := PublishWithRetry(mock, Event{Type: EventTaskLinked}, 3); err != nil {
		t.Errorf("PublishWithRetry() = %v, want nil after recovery", err)
	}
	if mock.calls != 3 {
		t.Errorf("calls = %d, want 3", mock.calls)
	}
}

func TestPublishWithRetry_ExhaustsRetries(t *testing.T) {
	mock := &mockPublisher{failUntil: 10}
	if err := PublishWithRetry(mock, Event{Type: EventTaskMoved}, 3); err == nil {
		t.Error("PublishWithRetry() = nil, want error after exhausting retries")
	}
	if mock.calls != 3 {
		t.Errorf("calls = %d, want exactly 3 attempts", mock.calls)
	}
}

func TestClientSendEvent_NotConnected(t *testing.T) {
	client := NewClient("/tmp/does-not-matter.sock")
	if err := client.SendEvent(Event{Type: EventTaskCreated}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendEvent before Connect = %v, want ErrNotConnected", err)
	}
}
