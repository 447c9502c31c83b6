package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"nearby/config"
	"nearby/internal/delivery"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/lifecycle"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/infra/pubsub"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// redisSubscriber consumes the redis event channel. Redis pub/sub has no
// redelivery, so a failed delivery is logged and dropped.
type redisSubscriber struct {
	rdb             *goredis.Client
	sub             *goredis.PubSub
	logger          *slog.Logger
	notificationSvc usecase.NotificationUsecase
}

// RedisSubscriberParams holds dependencies for the redis subscriber
type RedisSubscriberParams struct {
	fx.In

	Lc              fx.Lifecycle
	Ctx             context.Context
	Cfg             *config.Config
	Logger          *slog.Logger
	NotificationSvc usecase.NotificationUsecase
}

// NewRedisSubscriber subscribes to the channel the API publishes on
func NewRedisSubscriber(params RedisSubscriberParams) (delivery.Delivery, error) {
	redisCfg := params.Cfg.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		return nil, errors.New("redis address is required for the redis subscriber")
	}

	rdb, err := pubsub.NewRedisClient(params.Ctx, redisCfg)
	if err != nil {
		return nil, err
	}

	channel := pubsub.RedisChannel(redisCfg)
	s := &redisSubscriber{
		rdb:             rdb,
		sub:             rdb.Subscribe(params.Ctx, channel),
		logger:          params.Logger.With(slog.String("channel", channel)),
		notificationSvc: params.NotificationSvc,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			s.logger.Info("[Worker] Closing redis subscription")
			if err := s.sub.Close(); err != nil {
				s.logger.Warn("[Worker] Failed to close subscription", slog.Any("error", err))
			}

			return errors.WithStack(s.rdb.Close())
		},
	})

	return s, nil
}

// Serve blocks until the subscription is closed
func (s *redisSubscriber) Serve(ctx context.Context) error {
	receiveCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if _, err := s.sub.Receive(receiveCtx); err != nil {
		return errors.Wrap(err, "redis subscribe")
	}

	s.logger.Info("[Worker] Listening for realtime events")
	s.consume(ctx, s.sub.Channel())

	return nil
}

func (s *redisSubscriber) consume(ctx context.Context, messages <-chan *goredis.Message) {
	for msg := range messages {
		s.handle(ctx, msg.Payload)
	}
}

func (s *redisSubscriber) handle(ctx context.Context, payload string) {
	var event service.RealtimeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.logger.Error("[Worker] Failed to parse realtime event", slog.Any("error", err))

		return
	}

	requestID := event.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	reqLogger := s.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	result, err := s.notificationSvc.DeliverEvent(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to deliver event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return
	}

	reqLogger.Info("[Worker] Event delivered",
		slog.String("event_id", event.EventID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
	)
}
