package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleSet_Validate(t *testing.T) {
	type request struct {
		Name  string
		Email string
	}

	rules := RuleSet[request]{
		{Field: "name", Valid: func(r request) bool { return NotBlank(r.Name) }, Message: "Name is required"},
		{Field: "email", Valid: func(r request) bool { return ValidEmail(r.Email) }, Message: "Email format is invalid"},
	}

	t.Run("valid request produces no failures", func(t *testing.T) {
		failures := rules.Validate(request{Name: "Maria", Email: "maria@example.com"})
		assert.Empty(t, failures)
	})

	t.Run("collects all failures instead of stopping at the first", func(t *testing.T) {
		failures := rules.Validate(request{Name: "  ", Email: "not-an-email"})

		assert.Len(t, failures, 2)
		assert.Equal(t, "Name is required", failures[0])
		assert.Equal(t, "Email format is invalid", failures[1])
	})

	t.Run("single failing rule yields one message", func(t *testing.T) {
		failures := rules.Validate(request{Name: "Maria", Email: "broken"})

		assert.Equal(t, []string{"Email format is invalid"}, failures)
	})
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("x"))
	assert.True(t, NotBlank(" x "))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   "))
	assert.False(t, NotBlank("\t\n"))
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"user.name+tag@sub.domain.com.br",
		" padded@example.com ",
	}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}

	invalid := []string{"", "not-an-email", "user@", "@example.com", "user@domain", "a b@example.com"}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"(11) 98765-4321",
		"11987654321",
		"1134567890",
		"(21)91234-5678",
		"+55 11 91234-5678",
		"+5511987654321",
	}
	for _, p := range valid {
		assert.True(t, ValidPhone(p), p)
	}

	invalid := []string{"", "123", "abc", "(11) 9876", "119876543210000", "+1 11 91234-5678"}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), p)
	}
}

func TestValidDocument(t *testing.T) {
	t.Run("valid CPF with and without punctuation", func(t *testing.T) {
		assert.True(t, ValidDocument("529.982.247-25"))
		assert.True(t, ValidDocument("52998224725"))
	})

	t.Run("valid CNPJ", func(t *testing.T) {
		assert.True(t, ValidDocument("11.222.333/0001-81"))
		assert.True(t, ValidDocument("11222333000181"))
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		assert.False(t, ValidDocument("529.982.247-26"))
		assert.False(t, ValidDocument("11.222.333/0001-82"))
	})

	t.Run("rejects repeated digits", func(t *testing.T) {
		assert.False(t, ValidDocument("111.111.111-11"))
		assert.False(t, ValidDocument(strings.Repeat("0", 14)))
	})

	t.Run("rejects wrong lengths", func(t *testing.T) {
		assert.False(t, ValidDocument(""))
		assert.False(t, ValidDocument("1234567890"))
		assert.False(t, ValidDocument("123456789012345"))
	})
}
