package service

import (
	"context"
)

// PushMessage is one notification rendered for a realtime event.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushBatchResult reports a multicast. InvalidTokens are tokens the provider
// will never accept again and should be deactivated.
type PushBatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push notifications to device tokens
type NotificationService interface {
	// SendBatch multicasts msg to at most MaxBatchSize tokens of one provider call.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*PushBatchResult, error)
}
