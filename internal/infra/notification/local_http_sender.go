package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPSender posts mail in the Pub/Sub push envelope to a local endpoint for development.
type localHTTPSender struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage mirrors the body Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPSender creates a new local HTTP sender
func NewLocalHTTPSender(endpoint string, logger *slog.Logger) service.NotificationSender {
	return &localHTTPSender{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Send posts the message and treats any non-2xx reply as a failure.
func (s *localHTTPSender) Send(ctx context.Context, toAddress, subject, body string) error {
	msg := newMailMessage(ctx, toAddress, subject, body)
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	push := PushMessage{
		Subscription: "projects/local/subscriptions/mail-sub",
	}
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.MessageID = uuid.New().String()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	push.Message.Attributes = mailAttributes(msg)

	payload, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if msg.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, msg.RequestID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mail endpoint returned non-success status: %d", resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[LocalSender] Mail pushed",
		slog.String("message_id", push.Message.MessageID),
	)

	return nil
}

func (s *localHTTPSender) Close() error {
	return nil
}

func mailAttributes(msg service.MailMessage) map[string]string {
	attrs := map[string]string{
		"kind":    "account_mail",
		"subject": msg.Subject,
	}
	if msg.RequestID != "" {
		attrs["request_id"] = msg.RequestID
	}

	return attrs
}
