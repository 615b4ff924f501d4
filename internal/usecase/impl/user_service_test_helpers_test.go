package impl

import (
	"io"
	"log/slog"
	"time"

	"lending/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       4,
			PasswordMinLen:   8,
			PasswordResetTTL: 10 * time.Minute,
		},
	}
}
