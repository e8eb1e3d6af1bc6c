package main

import (
	"context"
	"log/slog"
	"os"

	"parceltrack/config"
	"parceltrack/internal/delivery"
	"parceltrack/internal/delivery/http"
	"parceltrack/internal/delivery/http/middleware"
	"parceltrack/internal/delivery/http/router/handler"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/infra/auth"
	"parceltrack/internal/infra/firebase"
	"parceltrack/internal/infra/identity"
	logs "parceltrack/internal/infra/log"
	"parceltrack/internal/infra/maps"
	"parceltrack/internal/infra/notification"
	"parceltrack/internal/infra/persistence"
	"parceltrack/internal/infra/pubsub"
	"parceltrack/internal/infra/qrcode"
	"parceltrack/internal/infra/storage"
	"parceltrack/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
		persistence.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewTokenVerifier,
			identity.New,
			notification.NewNotificationService,
			maps.NewDirectionsService,
			storage.NewObjectStorage,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewParcelService,
			impl.NewSharingService,
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewPreferencesService,
			impl.NewDirectionsService,
			impl.NewNotificationService,
			impl.NewSessionService,
			fx.Annotate(
				impl.NewDirectPublisher,
				fx.ResultTags(`name:"directPublisher"`),
			),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewParcelHandler,
			handler.NewShareHandler,
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewDirectionsHandler,
			handler.NewSessionHandler,
			handler.NewFunctionHandler,
			handler.NewStaticHandler,
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
