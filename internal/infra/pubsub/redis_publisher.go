package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"nearby/config"
	"nearby/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const defaultRedisChannel = "nearby-events"

// redisPublisher fans events out over a redis channel for in-cluster subscribers
type redisPublisher struct {
	rdb     *goredis.Client
	channel string
	logger  *slog.Logger
}

// NewRedisClient connects to redis and verifies the connection with a ping
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()

		return nil, errors.Wrap(err, "redis ping")
	}

	return rdb, nil
}

// NewRedisPublisher publishes onto the configured channel
func NewRedisPublisher(ctx context.Context, cfg *config.RedisConfig, logger *slog.Logger) (service.EventPublisher, error) {
	rdb, err := NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &redisPublisher{
		rdb:     rdb,
		channel: RedisChannel(cfg),
		logger:  logger,
	}, nil
}

func (p *redisPublisher) PublishEvent(ctx context.Context, event *service.RealtimeEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	receivers, err := p.rdb.Publish(ctx, p.channel, raw).Result()
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[RedisPubSub] Event published",
		slog.String("event_id", event.EventID),
		slog.Int64("receivers", receivers),
	)

	return nil
}

func (p *redisPublisher) Close() error {
	return errors.WithStack(p.rdb.Close())
}

// RedisChannel is the channel events travel on, shared by publisher and subscriber
func RedisChannel(cfg *config.RedisConfig) string {
	if cfg.Channel == "" {
		return defaultRedisChannel
	}

	return cfg.Channel
}
