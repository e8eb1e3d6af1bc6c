package main

import (
	"context"
	"log/slog"
	"os"

	"parceltrack/config"
	"parceltrack/internal/delivery"
	"parceltrack/internal/delivery/worker"
	"parceltrack/internal/delivery/worker/handler"
	"parceltrack/internal/infra/firebase"
	logs "parceltrack/internal/infra/log"
	"parceltrack/internal/infra/notification"
	"parceltrack/internal/infra/persistence"
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
		injectUsecase(),
		injectDelivery(),
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
			notification.NewNotificationService,
		),
		firebase.Module,
		persistence.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewNotificationService,
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
