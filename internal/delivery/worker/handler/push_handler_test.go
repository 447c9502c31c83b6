package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "nearby/internal/delivery/context"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	mockusecase "nearby/internal/mocks/usecase"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func pushBody(t *testing.T, event *service.RealtimeEvent, attributes map[string]string) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.RealtimeEvent{
		EventID:   "evt-1",
		SubjectID: "8a7c7f55-9b43-4f3c-9f6d-2f2f5d9d9e11",
		EventType: "match.created",
	}

	t.Run("delivers and propagates the request id", func(t *testing.T) {
		notifier := mockusecase.NewMockNotificationUsecase(t)
		notifier.EXPECT().
			DeliverEvent(mock.Anything, mock.MatchedBy(func(e *service.RealtimeEvent) bool { return e.EventID == "evt-1" })).
			Run(func(ctx context.Context, _ *service.RealtimeEvent) {
				assert.Equal(t, "req-9", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(&usecase.DeliveryResult{Devices: 2, Sent: 2}, nil)

		h := &PushHandler{logger: slog.Default(), notificationSvc: notifier}
		rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-9"}), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		notifier := mockusecase.NewMockNotificationUsecase(t)
		notifier.EXPECT().DeliverEvent(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrBackingStoreTimeout))

		h := &PushHandler{logger: slog.Default(), notificationSvc: notifier}
		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("malformed subject is acknowledged", func(t *testing.T) {
		notifier := mockusecase.NewMockNotificationUsecase(t)
		notifier.EXPECT().DeliverEvent(mock.Anything, mock.Anything).
			Return(nil, errors.New("invalid subject id"))

		h := &PushHandler{logger: slog.Default(), notificationSvc: notifier}
		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h := &PushHandler{logger: slog.Default(), notificationSvc: mockusecase.NewMockNotificationUsecase(t)}
		rec := servePush(h, `{"message":{"data":"%%%"}}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing push token when verification is on", func(t *testing.T) {
		h := &PushHandler{verifyPushAuth: true, logger: slog.Default(), notificationSvc: mockusecase.NewMockNotificationUsecase(t)}
		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid push token", func(t *testing.T) {
		notifier := mockusecase.NewMockNotificationUsecase(t)
		notifier.EXPECT().DeliverEvent(mock.Anything, mock.Anything).Return(&usecase.DeliveryResult{}, nil)

		h := &PushHandler{
			verifyPushAuth: true,
			validateToken: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "oidc", token)
				assert.Equal(t, "http://example.com/push", audience)

				return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
			},
			logger:          slog.Default(),
			notificationSvc: notifier,
		}
		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer oidc"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
