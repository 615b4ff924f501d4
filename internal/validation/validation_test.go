package validation

import (
	"testing"

	domainerrors "lending/internal/domain/errors"
	"lending/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Copies          *int   `json:"numberOfCopies" validate:"omitempty,gte=0"`
}

func TestStruct(t *testing.T) {
	negative := -1
	err := Struct(signupForm{
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
		Copies:          &negative,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var vErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, map[string]string{
		"name":            "is required",
		"email":           "must be a valid e-mail address",
		"password":        "must be at least 8 characters long",
		"confirmPassword": "must match password",
		"numberOfCopies":  "must be greater than or equal to 0",
	}, vErr.Fields())

	assert.NoError(t, Struct(signupForm{
		Name:            "Reader",
		Email:           "reader@example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	}))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("reader@example.com"))
	assert.False(t, Email(""))
	assert.False(t, Email("reader@"))
}

func TestFields(t *testing.T) {
	f := Fields{}
	assert.NoError(t, f.Err())

	f.Add("password", "is required")
	f.Add("password", "ignored second message")
	err := f.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password: is required")
	assert.NotContains(t, err.Error(), "ignored")
}
