package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"lending/config"
	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultMailQueue = "lending.mail"

// rabbitMQSender publishes mail onto a work queue consumed by a mail worker.
type rabbitMQSender struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewRabbitMQSender dials the broker and declares the mail queue.
func NewRabbitMQSender(cfg config.RabbitMQConfig, logger *slog.Logger) (service.NotificationSender, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("rabbitmq url is required")
	}

	queue := cfg.Queue
	if queue == "" {
		queue = defaultMailQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(queue, cfg.QueueDurable, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	return &rabbitMQSender{
		conn:    conn,
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

// Send publishes one persistent message per mail.
func (s *rabbitMQSender) Send(ctx context.Context, toAddress, subject, body string) error {
	msg := newMailMessage(ctx, toAddress, subject, body)
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range mailAttributes(msg) {
		headers[key] = value
	}

	messageID := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Headers:      headers,
		Body:         data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish mail")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[RabbitMQSender] Mail queued",
		slog.String("queue", s.queue),
		slog.String("message_id", messageID),
	)

	return nil
}

// Close closes the channel and the connection
func (s *rabbitMQSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.channel != nil {
		errs = append(errs, s.channel.Close())
	}
	if s.conn != nil {
		errs = append(errs, s.conn.Close())
	}

	for _, err := range errs {
		if err != nil && !errors.Is(err, amqp.ErrClosed) {
			return errors.WithStack(err)
		}
	}

	return nil
}
