package handler_test

import (
	"net/http"
	"testing"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authBody struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

func TestUserHandler_Signup(t *testing.T) {
	f := createTestAPI(t)
	user := newUser(entity.RoleUser)

	f.users.EXPECT().
		Register(mock.Anything, usecase.RegisterUserInput{
			Name:            "Reader",
			Email:           "reader@example.com",
			Password:        "secret-pass",
			ConfirmPassword: "secret-pass",
		}).
		Return(&usecase.AuthOutput{AccessToken: "jwt", User: user}, nil)

	rec := f.do(http.MethodPost, "/users/signup",
		`{"name":"Reader","email":"reader@example.com","password":"secret-pass","confirmPassword":"secret-pass"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)

	var body authBody
	decodeData(t, rec, &body)
	assert.Equal(t, "jwt", body.Token)
	assert.Equal(t, user.ID, body.User.ID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_SignupValidation(t *testing.T) {
	f := createTestAPI(t)

	f.users.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError(map[string]string{
			"email":           "must be a valid e-mail address",
			"confirmPassword": "must match password",
		}))

	rec := f.do(http.MethodPost, "/users/signup", `{"name":"Reader","email":"nope","password":"a","confirmPassword":"b"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "must be a valid e-mail address", env.Error.Details["email"])
	assert.Equal(t, "must match password", env.Error.Details["confirmPassword"])
}

func TestUserHandler_MalformedBody(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(http.MethodPost, "/users/login", `{"email":`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestUserHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "bad credentials", err: domainerrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_CREDENTIALS"},
		{name: "deactivated", err: domainerrors.ErrAccountInactive, wantStatus: http.StatusUnauthorized, wantCode: "ACCOUNT_INACTIVE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t)
			call := f.users.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "reader@example.com", Password: "secret-pass"})
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&usecase.AuthOutput{AccessToken: "jwt", User: newUser(entity.RoleUser)}, nil)
			}

			rec := f.do(http.MethodPost, "/users/login", `{"email":"reader@example.com","password":"secret-pass"}`, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			if tt.wantCode == "" {
				assert.Nil(t, env.Error)

				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Nil(t, env.Error.Details)
		})
	}
}

func TestUserHandler_Logout(t *testing.T) {
	f := createTestAPI(t)
	user := newUser(entity.RoleUser)
	f.signIn("jwt", user)

	f.users.EXPECT().Logout(mock.Anything, user.ID).Return(nil)

	rec := f.do(http.MethodPatch, "/users/logout", "", "jwt")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_ForgotPassword(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		f := createTestAPI(t)
		f.users.EXPECT().ForgotPassword(mock.Anything, "reader@example.com").Return(nil)

		rec := f.do(http.MethodPost, "/users/forgot-password", `{"email":"reader@example.com"}`, "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := createTestAPI(t)
		f.users.EXPECT().ForgotPassword(mock.Anything, "ghost@example.com").Return(domainerrors.ErrUserNotFound)

		rec := f.do(http.MethodPost, "/users/forgot-password", `{"email":"ghost@example.com"}`, "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("mail failure is a generic 500", func(t *testing.T) {
		f := createTestAPI(t)
		f.users.EXPECT().
			ForgotPassword(mock.Anything, "reader@example.com").
			Return(domainerrors.ErrNotificationFailed.WrapMessage("smtp: 550 mailbox unavailable"))

		rec := f.do(http.MethodPost, "/users/forgot-password", `{"email":"reader@example.com"}`, "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "NOTIFICATION_FAILED", decode(t, rec).Error.Code)
		assert.NotContains(t, rec.Body.String(), "smtp")
	})
}

func TestUserHandler_ResetPassword(t *testing.T) {
	f := createTestAPI(t)

	f.users.EXPECT().
		ResetPassword(mock.Anything, usecase.ResetPasswordInput{
			Token:           "abc123",
			Password:        "new-secret",
			ConfirmPassword: "new-secret",
		}).
		Return(&usecase.AuthOutput{AccessToken: "fresh", User: newUser(entity.RoleUser)}, nil)

	rec := f.do(http.MethodPatch, "/users/reset-password/abc123", `{"password":"new-secret","confirmPassword":"new-secret"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body authBody
	decodeData(t, rec, &body)
	assert.Equal(t, "fresh", body.Token)
}

func TestUserHandler_ChangePassword(t *testing.T) {
	f := createTestAPI(t)
	user := newUser(entity.RoleUser)
	f.signIn("jwt", user)

	f.users.EXPECT().
		ChangePassword(mock.Anything, usecase.ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "old-secret",
			Password:        "new-secret",
			ConfirmPassword: "new-secret",
		}).
		Return(&usecase.AuthOutput{AccessToken: "fresh", User: user}, nil)

	rec := f.do(http.MethodPatch, "/users/me/password",
		`{"currentPassword":"old-secret","password":"new-secret","confirmPassword":"new-secret"}`, "jwt")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_Reactivate(t *testing.T) {
	f := createTestAPI(t)

	f.users.EXPECT().
		Reactivate(mock.Anything, usecase.LoginInput{Email: "reader@example.com", Password: "secret-pass"}).
		Return(nil, domainerrors.ErrAccountAlreadyActive)

	rec := f.do(http.MethodPatch, "/users/reactivate", `{"email":"reader@example.com","password":"secret-pass"}`, "")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ACCOUNT_ALREADY_ACTIVE", decode(t, rec).Error.Code)
}
