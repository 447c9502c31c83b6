package usecase

import (
	"context"

	"nearby/internal/domain/service"
)

// DeliveryResult summarises one push fan-out.
type DeliveryResult struct {
	Devices int `json:"devices"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

// NotificationUsecase delivers real-time events to the recipient's devices
type NotificationUsecase interface {
	// DeliverEvent pushes the event to every active device of its subject.
	DeliverEvent(ctx context.Context, event *service.RealtimeEvent) (*DeliveryResult, error)
}
