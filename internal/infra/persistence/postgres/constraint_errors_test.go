package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert failed")
	}

	assert.True(t, isUniqueConstraintViolation(wrapped(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrapped(pgCheckViolation)))

	assert.True(t, isCheckConstraintViolation(wrapped(pgCheckViolation)))
	assert.True(t, isForeignKeyConstraintViolation(wrapped(pgForeignKeyViolation)))
	assert.True(t, isNotNullConstraintViolation(wrapped(pgNotNullViolation)))

	plain := errors.New("connection reset")
	assert.False(t, isUniqueConstraintViolation(plain))
	assert.False(t, isCheckConstraintViolation(plain))
	assert.False(t, isForeignKeyConstraintViolation(plain))
	assert.False(t, isNotNullConstraintViolation(plain))
}
