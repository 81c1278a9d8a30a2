package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newCapturedSQLLogger(debug bool) (*sqlLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*sqlLogger), &buf
}

func sqlFn() (string, int64) { return `SELECT * FROM "products"`, 1 }

func TestSQLLogger_Trace(t *testing.T) {
	t.Run("failure is logged at error", func(t *testing.T) {
		l, buf := newCapturedSQLLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("misses and duplicates stay quiet without debug", func(t *testing.T) {
		l, buf := newCapturedSQLLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		l.Trace(context.Background(), time.Now(), sqlFn, &pgconn.PgError{Code: pgUniqueViolation})

		assert.Empty(t, buf.String())
	})

	t.Run("misses surface at debug", func(t *testing.T) {
		l, buf := newCapturedSQLLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
		assert.Contains(t, buf.String(), "SQL expected miss")
	})

	t.Run("slow statement warns", func(t *testing.T) {
		l, buf := newCapturedSQLLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"rows":1`)
	})

	t.Run("fast statement only with debug", func(t *testing.T) {
		quiet, quietBuf := newCapturedSQLLogger(false)
		quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		loud, loudBuf := newCapturedSQLLogger(true)
		loud.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, loudBuf.String(), `"sql":"SELECT * FROM \"products\""`)
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newCapturedSQLLogger(true)
		l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestSQLLogger_UsesRequestLogger(t *testing.T) {
	l, baseBuf := newCapturedSQLLogger(false)
	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), `"request_id":"req-9"`)
}
