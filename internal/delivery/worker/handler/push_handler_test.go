package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/service"
	"lending/internal/errors"
	mockService "lending/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockService.MockNotificationSender) {
	relay := mockService.NewMockNotificationSender(t)

	return &PushHandler{
		relay:  relay,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, relay
}

func pushBody(t *testing.T, mail service.MailMessage, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(mail)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/local/subscriptions/mail-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RelaysMail(t *testing.T) {
	h, relay := newTestPushHandler(t)
	mail := service.MailMessage{To: "reader@example.com", Subject: "Reset", Body: "token", RequestID: "from-payload"}

	relay.EXPECT().
		Send(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "from-attributes"
		}), "reader@example.com", "Reset", "token").
		Return(nil)

	rec := servePush(h, pushBody(t, mail, map[string]string{"request_id": "from-attributes"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RelayFailureAsksForRetry(t *testing.T) {
	h, relay := newTestPushHandler(t)
	relay.EXPECT().Send(mock.Anything, "reader@example.com", "Reset", "token").Return(errors.New("421 try later"))

	rec := servePush(h, pushBody(t, service.MailMessage{To: "reader@example.com", Subject: "Reset", Body: "token"}, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_UnusableMessages(t *testing.T) {
	tests := []struct {
		name       string
		body       func(t *testing.T) string
		wantStatus int
	}{
		{
			name:       "not json",
			body:       func(*testing.T) string { return "{" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "bad recipient is acknowledged and dropped",
			body: func(t *testing.T) string {
				return pushBody(t, service.MailMessage{To: "nobody", Subject: "Reset"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := servePush(h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	mail := service.MailMessage{To: "reader@example.com", Subject: "Reset", Body: "token"}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.verifyPushAuth = true

		rec := servePush(h, pushBody(t, mail, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.verifyPushAuth = true
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, mail, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google signed", func(t *testing.T) {
		h, relay := newTestPushHandler(t)
		h.verifyPushAuth = true
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		relay.EXPECT().Send(mock.Anything, mail.To, mail.Subject, mail.Body).Return(nil)

		rec := servePush(h, pushBody(t, mail, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
