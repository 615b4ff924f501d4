// Package validation turns go-playground validator failures into domain validation errors.
package validation

import (
	"reflect"
	"strings"

	domainerrors "lending/internal/domain/errors"
	"lending/internal/errors"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return lowerFirst(field.Name)
		}

		return name
	})

	return v
}

// Struct validates s against its `validate` tags. Field names in the result follow the json tags.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate input")
	}

	fields := make(Fields, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields.Add(fe.Field(), message(fe))
	}

	return fields.Err()
}

// Email reports whether addr is a syntactically valid e-mail address.
func Email(addr string) bool {
	return validate.Var(addr, "required,email") == nil
}

// Fields collects one message per offending field.
type Fields map[string]string

// Add records msg for field unless the field already has a message.
func (f Fields) Add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

// Err returns a ValidationError, or nil when no field failed.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(f)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid e-mail address"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters long"
		}

		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters long"
		}

		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "eqfield":
		return "must match " + lowerFirst(fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid", "uuid4":
		return "must be a valid id"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
