package notification

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lending/config"
	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSender_ProviderSelection(t *testing.T) {
	logger := newDiscardLogger()

	tests := []struct {
		name    string
		cfg     *config.NotificationConfig
		wantErr string
	}{
		{name: "nil config logs", cfg: nil},
		{name: "log provider", cfg: &config.NotificationConfig{Provider: ProviderLog}},
		{name: "local provider", cfg: &config.NotificationConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:1/push"}},
		{name: "local without endpoint", cfg: &config.NotificationConfig{Provider: ProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.NotificationConfig{Provider: ProviderGoogle, TopicID: "mail"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.NotificationConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "rabbitmq without section", cfg: &config.NotificationConfig{Provider: ProviderRabbitMQ}, wantErr: "rabbitmq section is required"},
		{name: "rabbitmq without url", cfg: &config.NotificationConfig{Provider: ProviderRabbitMQ, RabbitMQ: &config.RabbitMQConfig{}}, wantErr: "rabbitmq url is required"},
		{name: "smtp without section", cfg: &config.NotificationConfig{Provider: ProviderSMTP}, wantErr: "smtp section is required"},
		{name: "smtp without from", cfg: &config.NotificationConfig{Provider: ProviderSMTP, SMTP: &config.SMTPConfig{Host: "mail", Port: 25}}, wantErr: "from address is required"},
		{name: "smtp", cfg: &config.NotificationConfig{Provider: ProviderSMTP, From: "no-reply@lending.local", SMTP: &config.SMTPConfig{Host: "mail", Port: 25}}},
		{name: "unknown", cfg: &config.NotificationConfig{Provider: "carrier-pigeon"}, wantErr: "unknown notification provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := newSender(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, sender)
			assert.NoError(t, sender.Close())
		})
	}
}

func TestLocalHTTPSender_Send(t *testing.T) {
	var received PushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get(deliverycontext.HeaderXRequestID)
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sender := NewLocalHTTPSender(server.URL, newDiscardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	err := sender.Send(ctx, "reader@example.com", "Reset your password", "token abc")
	require.NoError(t, err)

	assert.Equal(t, "req-7", requestIDHeader)
	assert.Equal(t, "req-7", received.Message.Attributes["request_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var msg service.MailMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "reader@example.com", msg.To)
	assert.Equal(t, "Reset your password", msg.Subject)
	assert.Equal(t, "token abc", msg.Body)
}

func TestLocalHTTPSender_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := NewLocalHTTPSender(server.URL, newDiscardLogger())
	err := sender.Send(context.Background(), "reader@example.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)

	return d.err
}

func TestSMTPSender_Send(t *testing.T) {
	dialer := &fakeDialer{}
	sender := &smtpSender{dialer: dialer, from: "no-reply@lending.local", logger: newDiscardLogger()}

	require.NoError(t, sender.Send(context.Background(), "reader@example.com", "Reset", "body"))
	require.Len(t, dialer.sent, 1)
	assert.Equal(t, []string{"no-reply@lending.local"}, dialer.sent[0].GetHeader("From"))
	assert.Equal(t, []string{"reader@example.com"}, dialer.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Reset"}, dialer.sent[0].GetHeader("Subject"))

	dialer.err = errors.New("relay refused")
	err := sender.Send(context.Background(), "reader@example.com", "Reset", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, sender.Send(ctx, "reader@example.com", "Reset", "body"))
}
