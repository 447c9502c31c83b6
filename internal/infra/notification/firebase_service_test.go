package notification

import (
	"context"
	"log/slog"
	"testing"

	"nearby/config"
	"nearby/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	multicast *messaging.MulticastMessage
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = message

	return f.response, f.err
}

func TestFirebaseService_SendBatch(t *testing.T) {
	msg := service.PushMessage{Title: "t", Body: "b", Data: map[string]string{"k": "v"}}

	t.Run("empty token list is a no-op", func(t *testing.T) {
		sender := &fakeSender{}
		svc := &firebaseService{client: sender}

		result, err := svc.SendBatch(context.Background(), nil, msg)
		require.NoError(t, err)
		assert.Zero(t, result.Sent)
		assert.Zero(t, result.Failed)
		assert.Nil(t, sender.multicast)
	})

	t.Run("over the multicast limit", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{}}

		_, err := svc.SendBatch(context.Background(), make([]string, MaxBatchSize+1), msg)
		assert.Error(t, err)
	})

	t.Run("counts come from the batch response", func(t *testing.T) {
		sender := &fakeSender{response: &messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "m1"},
				{Error: errors.New("transient")},
			},
		}}
		svc := &firebaseService{client: sender}

		result, err := svc.SendBatch(context.Background(), []string{"a", "b"}, msg)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Sent)
		assert.Equal(t, 1, result.Failed)
		assert.Empty(t, result.InvalidTokens)
		assert.Equal(t, []string{"a", "b"}, sender.multicast.Tokens)
		assert.Equal(t, "t", sender.multicast.Notification.Title)
		assert.Equal(t, "v", sender.multicast.Data["k"])
	})

	t.Run("transport failure", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

		_, err := svc.SendBatch(context.Background(), []string{"a"}, msg)
		assert.ErrorContains(t, err, "unavailable")
	})
}

func TestNewNotificationService_WithoutFirebase(t *testing.T) {
	svc, err := NewNotificationService(context.Background(), &config.Config{}, slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &logOnlyService{}, svc)

	result, err := svc.SendBatch(context.Background(), []string{"a", "b"}, service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.InvalidTokens)

	_, err = svc.SendBatch(context.Background(), make([]string, MaxBatchSize+1), service.PushMessage{})
	assert.Error(t, err)
}
