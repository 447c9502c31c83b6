package main

import (
	"context"
	"log/slog"
	"os"

	"nearby/config"
	"nearby/internal/delivery"
	"nearby/internal/delivery/worker"
	"nearby/internal/delivery/worker/handler"
	"nearby/internal/domain/constants"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/notification"
	"nearby/internal/infra/persistence/memory"
	"nearby/internal/infra/persistence/postgres"
	"nearby/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg.Store.Driver),
		injectService(),
		injectHandler(),
		injectDelivery(cfg.PubSub.Provider),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// The notifier only reads and deactivates device tokens.
func injectRepo(driver string) fx.Option {
	if driver == constants.StoreDriverMemory {
		return fx.Provide(
			memory.NewStore,
			memory.NewDeviceRepository,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewDeviceRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		notification.NewNotificationService,
		impl.NewNotificationService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPushHandler,
	)
}

// injectDelivery always serves the push endpoint; with the redis provider the
// worker also subscribes to the event channel.
func injectDelivery(provider string) fx.Option {
	deliveries := []any{
		fx.Annotate(
			worker.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	}
	if provider == constants.PubSubProviderRedis {
		deliveries = append(deliveries, fx.Annotate(
			worker.NewRedisSubscriber,
			fx.ResultTags(`group:"deliveries"`),
		))
	}

	return fx.Provide(deliveries...)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
