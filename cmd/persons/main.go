package main

import (
	"context"
	"log/slog"
	"os"

	"persons/config"
	"persons/internal/delivery"
	"persons/internal/delivery/http"
	"persons/internal/delivery/http/middleware"
	"persons/internal/delivery/http/router/handler"
	"persons/internal/domain/service"
	logs "persons/internal/infra/log"
	"persons/internal/infra/lookup"
	"persons/internal/infra/lookup/viacep"
	"persons/internal/infra/persistence/postgres"
	"persons/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPersonRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newAddressLookup,
		),
	)
}

// newAddressLookup builds the outbound address lookup: the HTTP provider
// client wrapped by the in-memory memoization layer.
func newAddressLookup(cfg *config.Config, logger *slog.Logger) (service.AddressLookupService, error) {
	return lookup.NewCachedService(viacep.New(cfg, logger), cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPersonService,
			impl.NewLookupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPersonHandler,
			handler.NewCEPHandler,
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
