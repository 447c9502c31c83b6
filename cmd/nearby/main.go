package main

import (
	"context"
	"log/slog"
	"os"

	"nearby/config"
	"nearby/internal/delivery"
	"nearby/internal/delivery/api"
	"nearby/internal/delivery/api/middleware"
	"nearby/internal/delivery/api/router/handler"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/service"
	"nearby/internal/infra/auth"
	"nearby/internal/infra/geocode"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/metrics"
	"nearby/internal/infra/payment"
	"nearby/internal/infra/persistence/memory"
	"nearby/internal/infra/persistence/postgres"
	"nearby/internal/infra/pubsub"
	"nearby/internal/infra/qrcode"
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
		injectEngine(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			logs.New,
			context.Background,
		),
		pubsub.Module,
	)
}

// injectRepo binds every repository to the configured driver. The memory
// driver keeps all state in process and is meant for local runs.
func injectRepo(driver string) fx.Option {
	if driver == constants.StoreDriverMemory {
		return fx.Provide(
			memory.NewStore,
			memory.NewTransactionManager,
			memory.NewProfileRepository,
			memory.NewGeoIndexRepository,
			memory.NewBoostRepository,
			memory.NewMembershipRepository,
			memory.NewFeatureUsageRepository,
			memory.NewPointRepository,
			memory.NewLikeRepository,
			memory.NewVenueRepository,
			memory.NewDeviceRepository,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewTransactionManager,
		postgres.NewProfileRepository,
		postgres.NewGeoIndexRepository,
		postgres.NewBoostRepository,
		postgres.NewMembershipRepository,
		postgres.NewFeatureUsageRepository,
		postgres.NewPointRepository,
		postgres.NewLikeRepository,
		postgres.NewVenueRepository,
		postgres.NewDeviceRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewJWTService,
		qrcode.NewQRCodeService,
		geocode.NewGeocoder,
		payment.NewPaymentVerifier,
		fx.Annotate(
			metrics.NewEngineMetrics,
			fx.As(fx.Self()),
			fx.As(new(service.EngineMetrics)),
		),
	)
}

func injectEngine() fx.Option {
	return fx.Provide(
		impl.NewGeoIndex,
		impl.NewBoostLedger,
		impl.NewEntitlementLedger,
		impl.NewRankingEngine,
		impl.NewIdentityResolver,
		impl.NewEventNotifier,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewLocationService,
		impl.NewDiscoveryService,
		impl.NewBoostService,
		impl.NewSuperLikeService,
		impl.NewEntitlementService,
		impl.NewProfileService,
		impl.NewVenueService,
		impl.NewDeviceService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewLocationHandler,
		handler.NewDiscoveryHandler,
		handler.NewBoostHandler,
		handler.NewEntitlementHandler,
		handler.NewVenueHandler,
		handler.NewDeviceHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
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
