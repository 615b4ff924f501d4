package notification

import (
	"context"
	"log/slog"
	"strings"

	"lending/config"
	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// mailDialer is the part of gomail.Dialer the sender needs.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpSender delivers mail directly through an SMTP relay.
type smtpSender struct {
	dialer mailDialer
	from   string
	logger *slog.Logger
}

// NewSMTPSender creates a sender for the configured relay.
func NewSMTPSender(cfg config.SMTPConfig, from string, logger *slog.Logger) (service.NotificationSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.Port <= 0 {
		return nil, errors.New("smtp port is required")
	}
	if strings.TrimSpace(from) == "" {
		return nil, errors.New("notification from address is required for smtp provider")
	}

	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
		logger: logger,
	}, nil
}

// Send opens one SMTP connection per message.
func (s *smtpSender) Send(ctx context.Context, toAddress, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toAddress)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[SMTPSender] Mail sent", slog.String("to", toAddress))

	return nil
}

func (s *smtpSender) Close() error {
	return nil
}
