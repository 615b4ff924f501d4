package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"lending/config"
	"lending/internal/delivery/api"
	"lending/internal/delivery/api/middleware"
	"lending/internal/delivery/api/router"
	"lending/internal/delivery/api/router/handler"
	"lending/internal/domain/entity"
	mockUsecase "lending/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// apiFixtures wires the real echo pipeline to mocked usecases.
type apiFixtures struct {
	e         *echo.Echo
	session   *mockUsecase.MockSessionUsecase
	users     *mockUsecase.MockUserUsecase
	profiles  *mockUsecase.MockProfileUsecase
	catalog   *mockUsecase.MockCatalogUsecase
	loans     *mockUsecase.MockLoanUsecase
	loanAdmin *mockUsecase.MockLoanAdminUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	f := apiFixtures{
		session:   mockUsecase.NewMockSessionUsecase(t),
		users:     mockUsecase.NewMockUserUsecase(t),
		profiles:  mockUsecase.NewMockProfileUsecase(t),
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		loans:     mockUsecase.NewMockLoanUsecase(t),
		loanAdmin: mockUsecase.NewMockLoanAdminUsecase(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.e = api.NewEcho(cfg, logger, router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.users, Logger: logger}),
		ProfileHandler: handler.NewProfileHandler(f.profiles),
		BookHandler:    handler.NewBookHandler(handler.BookHandlerParams{CatalogUC: f.catalog, Logger: logger}),
		LoanHandler:    handler.NewLoanHandler(handler.LoanHandlerParams{LoanUC: f.loans, LoanAdminUC: f.loanAdmin}),
		AuthMiddleware: middleware.NewAuthMiddleware(f.session),
	})

	return f
}

// signIn makes token resolve to user for the rest of the test.
func (f apiFixtures) signIn(token string, user *entity.User) {
	f.session.EXPECT().Authenticate(mock.Anything, token).Return(user, nil)
}

func (f apiFixtures) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func newUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "reader@example.com",
		Name:     "Reader",
		Role:     role,
		IsActive: true,
		Session:  entity.SessionAuthenticated,
		LoanIDs:  []uuid.UUID{},
	}
}
