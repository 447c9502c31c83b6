package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/service"
	mockusecase "nearby/internal/mocks/usecase"
	"nearby/internal/usecase"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func redisMessage(t *testing.T, event *service.RealtimeEvent) *goredis.Message {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return &goredis.Message{Channel: "nearby-events", Payload: string(raw)}
}

func TestRedisSubscriber_Consume(t *testing.T) {
	notifier := mockusecase.NewMockNotificationUsecase(t)
	notifier.EXPECT().
		DeliverEvent(mock.Anything, mock.MatchedBy(func(e *service.RealtimeEvent) bool { return e.EventID == "evt-1" })).
		Run(func(ctx context.Context, _ *service.RealtimeEvent) {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.DeliveryResult{Devices: 1, Sent: 1}, nil).
		Once()
	notifier.EXPECT().
		DeliverEvent(mock.Anything, mock.MatchedBy(func(e *service.RealtimeEvent) bool { return e.EventID == "evt-2" })).
		Return(nil, errors.New("firebase down")).
		Once()

	messages := make(chan *goredis.Message, 3)
	messages <- redisMessage(t, &service.RealtimeEvent{EventID: "evt-1", RequestID: "req-1", EventType: "match.created"})
	messages <- &goredis.Message{Payload: "{not json"}
	messages <- redisMessage(t, &service.RealtimeEvent{EventID: "evt-2", EventType: "superlike.received"})
	close(messages)

	s := &redisSubscriber{logger: slog.Default(), notificationSvc: notifier}
	s.consume(context.Background(), messages)
}
