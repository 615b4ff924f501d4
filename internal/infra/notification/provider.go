// Package notification delivers account e-mails through a configurable transport.
package notification

import (
	"context"
	"log/slog"

	"lending/config"
	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported providers
const (
	ProviderLog      = "log"
	ProviderLocal    = "local"
	ProviderGoogle   = "google"
	ProviderRabbitMQ = "rabbitmq"
	ProviderSMTP     = "smtp"
)

// SenderParams holds dependencies for NotificationSender, injected by Fx
type SenderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationSender creates a NotificationSender based on configuration
func NewNotificationSender(params SenderParams) (service.NotificationSender, error) {
	sender, err := newSender(params.Ctx, params.Config.Notification, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing NotificationSender")

			return sender.Close()
		},
	})

	return sender, nil
}

func newSender(ctx context.Context, cfg *config.NotificationConfig, logger *slog.Logger) (service.NotificationSender, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderLog {
		logger.Info("Notification transport not configured, logging messages instead")

		return &logSender{logger: logger}, nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP notification sender", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPSender(cfg.LocalEndpoint, logger), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub notification sender",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubSender(ctx, cfg.ProjectID, cfg.TopicID, cfg.CredentialsFile, logger)

	case ProviderRabbitMQ:
		if cfg.RabbitMQ == nil {
			return nil, errors.New("rabbitmq section is required for rabbitmq provider")
		}
		logger.Info("Using RabbitMQ notification sender", slog.String("queue", cfg.RabbitMQ.Queue))

		return NewRabbitMQSender(*cfg.RabbitMQ, logger)

	case ProviderSMTP:
		if cfg.SMTP == nil {
			return nil, errors.New("smtp section is required for smtp provider")
		}
		logger.Info("Using SMTP notification sender",
			slog.String("host", cfg.SMTP.Host),
			slog.Int("port", cfg.SMTP.Port),
		)

		return NewSMTPSender(*cfg.SMTP, cfg.From, logger)

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}
}

// newMailMessage stamps the request id so the worker side can correlate logs.
func newMailMessage(ctx context.Context, to, subject, body string) service.MailMessage {
	return service.MailMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        to,
		Subject:   subject,
		Body:      body,
	}
}

// logSender writes messages to the log. Meant for development only.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, toAddress, subject, body string) error {
	msg := newMailMessage(ctx, toAddress, subject, body)
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[LogSender] Mail not delivered, transport disabled",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("[LogSender] Mail body", slog.String("body", msg.Body))

	return nil
}

func (s *logSender) Close() error {
	return nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationSender),
)
