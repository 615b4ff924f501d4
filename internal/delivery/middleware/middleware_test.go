package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lending/config"
	deliverycontext "lending/internal/delivery/context"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRequestID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "kept", raw: "req-123", want: "req-123"},
		{name: "trimmed", raw: "  req-123 ", want: "req-123"},
		{name: "blank", raw: "   ", want: ""},
		{name: "too long", raw: strings.Repeat("a", maxRequestIDLength+1), want: ""},
		{name: "embedded newline", raw: "req\nforged=1", want: ""},
		{name: "inner space", raw: "req 123", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clientRequestID(tt.raw))
		})
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	var logged bytes.Buffer
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&logged, nil)))

	run := func(header string) (string, string) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		if header != "" {
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var seen string
		err := mw.Process(func(c echo.Context) error {
			seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
			deliverycontext.GetLogger(c.Request().Context()).Info("inside")
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))

			return nil
		})(c)
		require.NoError(t, err)

		return seen, rec.Header().Get(deliverycontext.HeaderXRequestID)
	}

	seen, header := run("client-id-1")
	assert.Equal(t, "client-id-1", seen)
	assert.Equal(t, "client-id-1", header)
	assert.Contains(t, logged.String(), "request_id=client-id-1")

	seen, header = run("bad\tid")
	assert.NotEqual(t, "bad\tid", seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, header)
}

func TestResponseStatus(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, http.StatusConflict, responseStatus(c, errors.Wrap(domainerrors.ErrNoCopiesAvailable, "borrow")))
	assert.Equal(t, http.StatusNotFound, responseStatus(c, echo.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, responseStatus(c, errors.New("boom")))
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, nil))

	cfg := &config.Config{}
	next := func(c echo.Context) error { return domainerrors.ErrBookNotFound }

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/books/x", nil), httptest.NewRecorder())
	err := NewLoggerMiddleware(logger, cfg).Handle(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
	assert.Empty(t, logged.String())

	cfg.Env.Debug = true
	err = NewLoggerMiddleware(logger, cfg).Handle(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
	assert.Contains(t, logged.String(), "status=404")
	assert.Contains(t, logged.String(), "level=WARN")
}
