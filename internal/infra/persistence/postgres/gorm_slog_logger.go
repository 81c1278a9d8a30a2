package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// sqlLogger routes GORM output through slog. Lookups that miss and inserts that
// hit a unique index are part of normal storefront traffic (unknown product ids,
// duplicate registrations) and are reported at debug rather than error.
type sqlLogger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &sqlLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *sqlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *sqlLogger) message(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}
	l.forContext(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	query, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", query),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.forContext(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify picks the level for a finished statement, or reports false when it
// should not be logged at the current verbosity.
func (l *sqlLogger) classify(err error, elapsed time.Duration) (slog.Level, string, bool) {
	switch {
	case err != nil && (errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err)):
		return slog.LevelDebug, "SQL expected miss", l.level >= gormlogger.Info
	case err != nil:
		return slog.LevelError, "SQL failed", l.level >= gormlogger.Error
	case l.slow > 0 && elapsed > l.slow:
		return slog.LevelWarn, "SQL slow", l.level >= gormlogger.Warn
	default:
		return slog.LevelDebug, "SQL", l.level >= gormlogger.Info
	}
}

func (l *sqlLogger) forContext(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
