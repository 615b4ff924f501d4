package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lending/config"
	deliverycontext "lending/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// sqlLogger routes GORM output through slog. Constraint violations are
// expected outcomes (duplicate e-mail, duplicate title, stock floor) that the
// repositories translate into conflicts, so they are logged at debug level.
type sqlLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newSQLLogger(base *slog.Logger, cfg *config.Config) *sqlLogger {
	l := &sqlLogger{
		base:          base.With(slog.String("component", "postgres")),
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}

	switch {
	case cfg.Env.Log.Level == "error":
		l.level = logger.Error
	case cfg.Env.Debug:
		l.level = logger.Info
	}
	if cfg.Storage != nil && cfg.Storage.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Storage.SlowQueryThreshold
	}

	return l
}

func (l *sqlLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *sqlLogger) printf(ctx context.Context, floor logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < floor {
		return
	}
	l.from(ctx).Log(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	statement, rows := sqlAndRows()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", statement),
	}, extra...)

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify decides whether a finished statement is worth a log line.
func (l *sqlLogger) classify(err error, elapsed time.Duration) (slog.Level, string, []slog.Attr, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return 0, "", nil, false
	case err != nil && isConstraintViolation(err):
		if l.level < logger.Info {
			return 0, "", nil, false
		}

		return slog.LevelDebug, "SQL constraint rejected statement", []slog.Attr{slog.String("sqlstate", pgErrorCode(err))}, true
	case err != nil:
		if l.level < logger.Error {
			return 0, "", nil, false
		}

		return slog.LevelError, "SQL statement failed", []slog.Attr{slog.String("error", err.Error())}, true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "SQL statement slow", []slog.Attr{slog.Duration("threshold", l.slowThreshold)}, true
	case l.level >= logger.Info:
		return slog.LevelInfo, "SQL statement", nil, true
	}

	return 0, "", nil, false
}
