package main

import (
	"context"
	"log/slog"
	"os"

	"voltmart/config"
	"voltmart/internal/delivery"
	"voltmart/internal/delivery/http"
	"voltmart/internal/delivery/http/middleware"
	"voltmart/internal/delivery/http/router/handler"
	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/service"
	"voltmart/internal/errors"
	"voltmart/internal/infra/auth"
	logs "voltmart/internal/infra/log"
	"voltmart/internal/infra/persistence/blob"
	"voltmart/internal/infra/persistence/gormstore"
	"voltmart/internal/infra/persistence/memory"
	"voltmart/internal/infra/persistence/unified"
	"voltmart/internal/infra/pubsub"
	"voltmart/internal/infra/qrcode"
	"voltmart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newCommerceStore,
		pubsub.NewEventPublisher,
	)
}

type storeParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newCommerceStore builds the configured backing store and overlays the
// demo seed data on top of it.
func newCommerceStore(params storeParams) (repository.CommerceStore, error) {
	backing, err := newBackingStore(params)
	if err != nil {
		return nil, err
	}

	return unified.New(backing), nil
}

func newBackingStore(params storeParams) (repository.CommerceStore, error) {
	backend := "memory"
	if params.Config.Storage != nil && params.Config.Storage.Backend != "" {
		backend = params.Config.Storage.Backend
	}

	switch backend {
	case "memory":
		return memory.New(), nil
	case "blob":
		store, closeStore, err := blob.New(params.Ctx, params.Config.Storage.BlobURL, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closeStore()
			},
		})

		return store, nil
	case "postgres":
		db, err := gormstore.New(gormstore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return gormstore.NewStore(db, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown storage backend: %s", backend)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewProjectionService,
			impl.NewCatalogService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewCatalogHandler,
			handler.NewDashboardHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
