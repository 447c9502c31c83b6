package impl

import (
	"context"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	mockService "nearby/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventNotifier_PublishesDetached(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	notifier := NewEventNotifier(EventNotifierParams{Publisher: publisher, Config: newTestConfig(), Logger: newDiscardLogger()})
	subjectID := uuid.New()

	published := make(chan *service.RealtimeEvent, 1)
	publisher.EXPECT().
		PublishEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, event *service.RealtimeEvent) error {
			// The request context is already cancelled; the publish context is not.
			if ctx.Err() == nil {
				published <- event
			}

			return nil
		}).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	notifier.Notify(ctx, subjectID, entity.EventSuperLikeReceived, map[string]string{"from_id": "x"})

	select {
	case event := <-published:
		assert.Equal(t, subjectID.String(), event.SubjectID)
		assert.Equal(t, string(entity.EventSuperLikeReceived), event.EventType)
		assert.Equal(t, "x", event.Payload["from_id"])
		assert.NotEmpty(t, event.EventID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}

func TestEventNotifier_FailureIsSwallowed(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	notifier := NewEventNotifier(EventNotifierParams{Publisher: publisher, Config: newTestConfig(), Logger: newDiscardLogger()})

	done := make(chan struct{})
	publisher.EXPECT().
		PublishEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.RealtimeEvent) error {
			defer close(done)

			return errors.New("sink down")
		}).
		Once()

	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), uuid.New(), entity.EventMatchCreated, nil)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher was not called")
	}
}

func TestEventNotifier_NoPublisher(t *testing.T) {
	notifier := NewEventNotifier(EventNotifierParams{Config: newTestConfig(), Logger: newDiscardLogger()})

	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), uuid.New(), entity.EventMatchCreated, nil)
	})
}
