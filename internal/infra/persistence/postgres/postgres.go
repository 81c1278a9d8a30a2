package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the catalog database. The pool is pinged on start, sampled for
// connection waits while running and closed on stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storefront database")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to access database pool")
	}

	watcher := &poolWatcher{logger: params.Logger, stats: sqlDB.Stats}
	stopWatcher := func() {}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()
			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to reach storefront database")
			}

			runCtx, cancelRun := context.WithCancel(context.Background())
			stopWatcher = cancelRun
			go watcher.run(runCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatcher()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher reports requests that had to queue for a connection.
type poolWatcher struct {
	logger *slog.Logger
	stats  func() sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	last := w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.stats()
			w.report(ctx, last, cur)
			last = cur
		}
	}
}

func (w *poolWatcher) report(ctx context.Context, last, cur sql.DBStats) {
	waits := cur.WaitCount - last.WaitCount
	if waits <= 0 || w.logger == nil {
		return
	}

	waited := cur.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Database pool saturated",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
