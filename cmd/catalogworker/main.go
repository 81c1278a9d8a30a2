// Command catalogworker consumes catalog change events pushed by Pub/Sub and
// keeps derived data, such as the home page lists, consistent with the catalog.
package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker"
	"storefront/internal/delivery/worker/handler"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewHomeSectionRepository,
			impl.NewCatalogEventService,
			handler.NewPushHandler,
			worker.NewServer,
		),
		fx.Invoke(serve),
	).Run()
}

// serve runs the push endpoint once the app has started and stops the app if
// the listener dies.
func serve(lc fx.Lifecycle, shutdowner fx.Shutdowner, server delivery.Delivery, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Serve(context.Background()); err != nil {
					logger.Error("Catalog worker stopped unexpectedly", slog.Any("error", err))
					if err := shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
						logger.Error("Failed to shut down", slog.Any("error", err))
					}
				}
			}()

			return nil
		},
	})
}
