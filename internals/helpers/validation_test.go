package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMap(t *testing.T) {
	type form struct {
		Email    string  `validate:"required,email"`
		Password string  `validate:"omitempty,min=8"`
		Rent     float64 `validate:"gte=0"`
	}

	err := validator.New().Struct(form{Email: "not-an-email", Password: "short", Rent: -1})
	require.Error(t, err)

	fields := ValidationErrorMap(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields["email"], "failed on the 'email' rule")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields["password"], "failed on the 'min=8' rule")
	assert.Contains(t, fields, "rent")
	assert.Contains(t, fields["rent"], "failed on the 'gte=0' rule")
}

func TestValidationErrorMap_NonValidatorError(t *testing.T) {
	fields := ValidationErrorMap(errors.New("boom"))
	assert.Empty(t, fields)
}
