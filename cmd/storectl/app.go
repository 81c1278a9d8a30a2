package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

// cliOptions wires the subset of the server graph the maintenance commands need.
func cliOptions() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewUserService,
			impl.NewSeedService,
		),
	)
}

// runWithApp starts the fx graph, fills targets, runs fn and stops the graph again.
func runWithApp(ctx context.Context, fn func(ctx context.Context, logger *slog.Logger) error, targets ...any) error {
	var logger *slog.Logger
	targets = append(targets, &logger)

	app := fx.New(cliOptions(), fx.Populate(targets...))
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx, logger)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("Failed to stop application cleanly", slog.Any("error", err))
	}

	return runErr
}
