package impl

import (
	"context"
	"log/slog"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// pushTitles holds the user-facing title and body of each event type.
var pushTitles = map[entity.EventType][2]string{
	entity.EventSuperLikeReceived: {"有人對你送出超級喜歡", "快去看看是誰吧"},
	entity.EventMatchCreated:      {"配對成功", "你們互相喜歡，開始聊天吧"},
	entity.EventBoostActivated:    {"加速已啟用", "你的個人檔案正在被更多人看到"},
}

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	guard           storeGuard
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		guard:           newStoreGuard(params.Config),
		logger:          loggerOrDefault(params.Logger),
	}
}

// DeliverEvent pushes the event to the subject's active devices in Firebase-sized
// batches. Tokens Firebase reports as invalid are deactivated.
func (s *notificationService) DeliverEvent(ctx context.Context, event *service.RealtimeEvent) (*usecase.DeliveryResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.EventType),
	)

	subjectID, err := uuid.Parse(event.SubjectID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid subject id %q", event.SubjectID)
	}

	devices, err := s.findDevices(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	result := &usecase.DeliveryResult{Devices: len(devices)}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title, body := pushContent(entity.EventType(event.EventType))
	msg := service.PushMessage{
		Title: title,
		Body:  body,
		Data:  make(map[string]string, len(event.Payload)+2),
	}
	for k, v := range event.Payload {
		msg.Data[k] = v
	}
	msg.Data["event_id"] = event.EventID
	msg.Data["event_type"] = event.EventType

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		batchResult, err := s.notificationSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			// Keep going with the remaining batches.
			logger.Warn("push batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}

		result.Sent += batchResult.Sent
		result.Failed += batchResult.Failed
		invalidTokens = append(invalidTokens, batchResult.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		if err := s.deactivateTokens(ctx, invalidTokens); err != nil {
			logger.Warn("failed to deactivate invalid tokens", slog.Int("tokens", len(invalidTokens)), slog.Any("error", err))
		}
	}

	logger.Info("event delivered",
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *notificationService) findDevices(ctx context.Context, subjectID uuid.UUID) ([]*entity.SubjectDevice, error) {
	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	devices, err := s.deviceRepo.FindActiveDevicesBySubjects(ctx, []uuid.UUID{subjectID})
	if err != nil {
		return nil, writeFailure(err, "failed to fetch devices")
	}

	return devices, nil
}

func (s *notificationService) deactivateTokens(ctx context.Context, tokens []string) error {
	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	return s.deviceRepo.DeactivateDevicesByTokens(ctx, tokens)
}

func pushContent(eventType entity.EventType) (title, body string) {
	if content, ok := pushTitles[eventType]; ok {
		return content[0], content[1]
	}

	return "新通知", ""
}
