package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"lending/config"
	deliverycontext "lending/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func createTestSQLLogger(t *testing.T, cfg *config.Config) (*sqlLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newSQLLogger(base, cfg), &buf
}

func TestSQLLogger_Trace(t *testing.T) {
	statement := func() (string, int64) { return "UPDATE books SET number_of_copies = number_of_copies - 1", 1 }

	t.Run("missing rows are silent", func(t *testing.T) {
		l, buf := createTestSQLLogger(t, &config.Config{})
		l.Trace(context.Background(), time.Now(), statement, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("constraint violations are not reported as failures", func(t *testing.T) {
		l, buf := createTestSQLLogger(t, &config.Config{})
		l.Trace(context.Background(), time.Now(), statement, &pgconn.PgError{Code: pgCheckViolation})
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf = createTestSQLLogger(t, cfg)
		l.Trace(context.Background(), time.Now(), statement, &pgconn.PgError{Code: pgCheckViolation})
		assert.Contains(t, buf.String(), "SQL constraint rejected statement")
		assert.Contains(t, buf.String(), "sqlstate=23514")
		assert.NotContains(t, buf.String(), "level=ERROR")
	})

	t.Run("failures carry the error", func(t *testing.T) {
		l, buf := createTestSQLLogger(t, &config.Config{})
		l.Trace(context.Background(), time.Now(), statement, errors.New("deadlock detected"))
		assert.Contains(t, buf.String(), "SQL statement failed")
		assert.Contains(t, buf.String(), "deadlock detected")
		assert.Contains(t, buf.String(), "component=postgres")
	})

	t.Run("slow statements use the configured threshold", func(t *testing.T) {
		cfg := &config.Config{Storage: &config.StorageConfig{SlowQueryThreshold: time.Hour}}
		l, buf := createTestSQLLogger(t, cfg)
		l.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)
		assert.Empty(t, buf.String())

		l, buf = createTestSQLLogger(t, &config.Config{})
		l.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)
		assert.Contains(t, buf.String(), "SQL statement slow")
	})

	t.Run("fast statements only in debug", func(t *testing.T) {
		l, buf := createTestSQLLogger(t, &config.Config{})
		l.Trace(context.Background(), time.Now(), statement, nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf = createTestSQLLogger(t, cfg)
		l.Trace(context.Background(), time.Now(), statement, nil)
		assert.Contains(t, buf.String(), "SQL statement")
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		l, buf := createTestSQLLogger(t, &config.Config{})
		silent := l.LogMode(logger.Silent)
		silent.Trace(context.Background(), time.Now(), statement, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}

func TestSQLLogger_UsesRequestLogger(t *testing.T) {
	l, baseBuf := createTestSQLLogger(t, &config.Config{})

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE loans", 0 }, errors.New("boom"))

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-42")
}
