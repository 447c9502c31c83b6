package notification

import (
	"context"
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// MaxBatchSize is the multicast token limit imposed by Firebase Cloud Messaging
const MaxBatchSize = 500

// multicastSender is the slice of the FCM client the service needs
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewNotificationService returns the Firebase sender when credentials are configured
// and a logging sender otherwise, so local runs never need FCM access.
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, push notifications will only be logged")

		return &logOnlyService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendBatch multicasts to at most MaxBatchSize device tokens
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	if len(tokens) == 0 {
		return &service.PushBatchResult{}, nil
	}
	if err := checkBatchSize(tokens); err != nil {
		return nil, err
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushBatchResult{
		Sent:          response.SuccessCount,
		Failed:        response.FailureCount,
		InvalidTokens: make([]string, 0),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		// Unregistered tokens will never succeed again
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

func checkBatchSize(tokens []string) error {
	if len(tokens) > MaxBatchSize {
		return errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	return nil
}

// logOnlyService records pushes instead of sending them
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatch(_ context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	if err := checkBatchSize(tokens); err != nil {
		return nil, err
	}
	s.logger.Debug("[LogOnlyPush] Batch notification", slog.Int("tokens", len(tokens)), slog.String("title", msg.Title))

	return &service.PushBatchResult{Sent: len(tokens)}, nil
}
