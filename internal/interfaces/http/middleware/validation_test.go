package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Document string `json:"document" binding:"required,cpfcnpj"`
	Phone    string `json:"phone" binding:"omitempty,brphone"`
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	t.Run("accepts valid payload", func(t *testing.T) {
		payload := registrationPayload{
			Name:     "Maria Souza",
			Email:    "maria@example.com",
			Document: "52998224725",
			Phone:    "+55 11 91234-5678",
		}

		assert.NoError(t, binding.Validator.ValidateStruct(payload))
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		payload := registrationPayload{
			Name:     "Maria Souza",
			Email:    "maria@example.com",
			Document: "11111111111",
		}

		err := binding.Validator.ValidateStruct(payload)
		require.Error(t, err)

		failures := FormatBindingFailures(err)
		assert.Equal(t, []string{"document: Not a valid CPF or CNPJ"}, failures)
	})

	t.Run("reports every failed field by its json name", func(t *testing.T) {
		payload := registrationPayload{
			Email:    "not-an-email",
			Document: "123",
			Phone:    "abc",
		}

		err := binding.Validator.ValidateStruct(payload)
		require.Error(t, err)

		failures := FormatBindingFailures(err)
		assert.Len(t, failures, 4)
		assert.Contains(t, failures, "name: This field is required")
		assert.Contains(t, failures, "email: Invalid email format")
		assert.Contains(t, failures, "document: Not a valid CPF or CNPJ")
		assert.Contains(t, failures, "phone: Not a valid phone number")
	})
}

func TestFormatBindingFailures(t *testing.T) {
	t.Run("non-validator error collapses to generic message", func(t *testing.T) {
		failures := FormatBindingFailures(errors.New("unexpected EOF"))
		assert.Equal(t, []string{"Request payload is malformed"}, failures)
	})
}
