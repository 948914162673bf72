package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMobileValidation(t *testing.T) {
	type payload struct {
		Number string `validate:"mobile"`
	}

	valid := []string{"9999999999", "+919999999999", "441234567890"}
	for _, number := range valid {
		assert.NoError(t, GetValidator().Struct(payload{Number: number}), number)
	}

	invalid := []string{"", "12ab", "123", "+1-202-555", "99999999999999999"}
	for _, number := range invalid {
		assert.Error(t, GetValidator().Struct(payload{Number: number}), number)
	}
}

func TestParseErrors(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := GetValidator().Struct(payload{Email: "nope"})
	assert.Error(t, err)

	errs := ParseErrors(err)
	assert.Contains(t, errs, "Name field is required")
	assert.Contains(t, errs, "Email must be a valid email address")
}
