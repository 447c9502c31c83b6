package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/constants"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator matches idtoken.Validate
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub pushes of real-time events into device notifications
type PushHandler struct {
	verifyPushAuth  bool
	validateToken   tokenValidator
	logger          *slog.Logger
	notificationSvc usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token, and only outside develop
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		validateToken:   idtoken.Validate,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush acknowledges with 2xx unless the failure is worth a Pub/Sub redelivery
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RealtimeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse realtime event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing realtime event",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.EventType),
		slog.String("subject_id", event.SubjectID),
	)

	result, err := h.notificationSvc.DeliverEvent(ctx, &event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to deliver event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		// Malformed events would fail forever, so they are acknowledged
		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event delivered",
		slog.String("event_id", event.EventID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
	)

	return c.NoContent(http.StatusOK)
}

// isRetryable reports store-side failures, which a later redelivery may get past
func isRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return false
}

func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RealtimeEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated pushes
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
