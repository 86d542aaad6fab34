package main

import (
	"context"
	"log/slog"
	"os"

	"weightwise/config"
	"weightwise/internal/delivery"
	"weightwise/internal/delivery/http"
	httpmiddleware "weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/router/handler"
	"weightwise/internal/infra/auth"
	"weightwise/internal/infra/auth/google"
	"weightwise/internal/infra/detect"
	logs "weightwise/internal/infra/log"
	"weightwise/internal/infra/persistence/postgres"
	"weightwise/internal/infra/pubsub"
	"weightwise/internal/infra/qrcode"
	"weightwise/internal/infra/storage"
	"weightwise/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Sweeper    *impl.SessionSweeper
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		prometheus.NewRegistry,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewWeightRepository,
			postgres.NewActivityRepository,
			postgres.NewBusinessRepository,
			postgres.NewReviewRepository,
			postgres.NewPreferencesRepository,
			postgres.NewRecommendationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewCookieSigner,
			google.NewOAuthService,
			storage.NewPhotoStore,
			detect.NewMockDetector,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewActivityRecorder,
			impl.NewAuthService,
			impl.NewWeightService,
			impl.NewActivityService,
			impl.NewBusinessService,
			impl.NewReviewService,
			impl.NewPreferencesService,
			impl.NewRecommendationService,
			impl.NewSessionSweeper,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewSessionMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewWeightHandler,
			handler.NewActivityHandler,
			handler.NewBusinessHandler,
			handler.NewReviewHandler,
			handler.NewPreferencesHandler,
			handler.NewRecommendationHandler,
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
