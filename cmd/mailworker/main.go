// Command mailworker receives account mail pushed by Pub/Sub (or the local sender)
// and relays it through the configured SMTP server.
package main

import (
	"context"
	"log/slog"
	"os"

	"lending/config"
	"lending/internal/delivery"
	"lending/internal/delivery/worker"
	"lending/internal/delivery/worker/handler"
	"lending/internal/domain/service"
	"lending/internal/errors"
	logs "lending/internal/infra/log"
	"lending/internal/infra/notification"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newRelaySender,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	).Run()
}

// newRelaySender always talks SMTP, whatever provider the API uses to publish.
func newRelaySender(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.NotificationSender, error) {
	if cfg.Notification == nil || cfg.Notification.SMTP == nil {
		return nil, errors.New("notification.smtp is required by the mail worker")
	}

	sender, err := notification.NewSMTPSender(*cfg.Notification.SMTP, cfg.Notification.From, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return sender.Close()
		},
	})

	return sender, nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
