package impl

import (
	"context"
	"log/slog"
	"time"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// eventNotifier implements usecase.EventNotifier on top of the configured publisher.
// Publishing runs in its own goroutine and outlives the request; failures are logged only.
type eventNotifier struct {
	publisher service.EventPublisher
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// EventNotifierParams holds dependencies for EventNotifier, injected by Fx.
type EventNotifierParams struct {
	fx.In

	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEventNotifier is the constructor for eventNotifier.
func NewEventNotifier(params EventNotifierParams) usecase.EventNotifier {
	return &eventNotifier{
		publisher: params.Publisher,
		timeout:   engineConfig(params.Config).NotifyTimeout,
		logger:    loggerOrDefault(params.Logger),
		now:       utcNow,
	}
}

// Notify never blocks the caller and never reports failure.
func (n *eventNotifier) Notify(ctx context.Context, subjectID uuid.UUID, eventType entity.EventType, payload map[string]string) {
	if n.publisher == nil {
		return
	}

	event := &service.RealtimeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		SubjectID:  subjectID.String(),
		EventType:  string(eventType),
		Payload:    payload,
		OccurredAt: n.now(),
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)
	detached := context.WithoutCancel(ctx)

	go func() {
		publishCtx, cancel := context.WithTimeout(detached, n.timeout)
		defer cancel()

		if err := n.publisher.PublishEvent(publishCtx, event); err != nil {
			logger.Warn("real-time event not delivered",
				slog.String("event_type", event.EventType),
				slog.String("subject_id", event.SubjectID),
				slog.Any("error", err))
		}
	}()
}
