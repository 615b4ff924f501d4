package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"lending/config"
	"lending/internal/domain/lifecycle"
	"lending/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval   = 5 * time.Second
	poolContentionFloor = 50 * time.Millisecond
)

// requiredTables are created by the migrate command; the API refuses to start without them.
var requiredTables = []string{"users", "books", "loans"}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool backing the user, book and loan repositories.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required when storage.driver is postgres")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager.Execute, so per-statement transactions are off.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newSQLLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := checkSchema(db.WithContext(ctx)); err != nil {
				return err
			}

			go watchPool(watchCtx, params.Logger, sqlDB)

			params.Logger.Info("Postgres store ready",
				slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL pool")
		},
	})

	return db, nil
}

func checkSchema(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, table := range requiredTables {
		if !migrator.HasTable(table) {
			return errors.Errorf("table %q is missing, run `migrate up` first", table)
		}
	}

	return nil
}

// watchPool reports callers that had to wait for a pooled connection.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		now := sqlDB.Stats()
		waits := now.WaitCount - last.WaitCount
		waited := now.WaitDuration - last.WaitDuration
		last = now
		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolContentionFloor {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Connections waited for the pool",
			slog.Int64("waits", waits),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("inUse", now.InUse),
			slog.Int("idle", now.Idle),
			slog.Int("maxOpen", now.MaxOpenConnections),
		)
	}
}
