package shared

import (
	"regexp"
	"strings"
)

// Rule is one declarative validation check over a request value.
// Valid reports whether the value passes; Message is the failure text.
type Rule[T any] struct {
	Field   string
	Valid   func(T) bool
	Message string
}

// RuleSet is an ordered list of rules for one request type
type RuleSet[T any] []Rule[T]

// Validate evaluates every rule eagerly and returns all failure messages
// in declaration order. Rules never short-circuit; the caller surfaces the
// full list at once. An empty result means the value is valid.
func (rs RuleSet[T]) Validate(v T) []string {
	var failures []string
	for _, rule := range rs {
		if !rule.Valid(v) {
			failures = append(failures, rule.Message)
		}
	}
	return failures
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^(\+55[\s\-]?)?\(?\d{2}\)?[\s\-]?9?\d{4}\-?\d{4}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// NotBlank reports whether the string contains non-whitespace content
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidEmail reports whether the string is a plausible email address
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// ValidPhone reports whether the string is a plausible BR phone number
func ValidPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// DocumentDigits strips punctuation from a CPF/CNPJ, keeping digits only
func DocumentDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidDocument reports whether the string is a valid CPF or CNPJ,
// verified by check digits. Punctuation is ignored.
func ValidDocument(s string) bool {
	digits := nonDigits.ReplaceAllString(s, "")
	switch len(digits) {
	case 11:
		return validCPF(digits)
	case 14:
		return validCNPJ(digits)
	default:
		return false
	}
}

// allSameDigits reports whether every character equals the first one.
// CPF/CNPJ numbers built from a single repeated digit satisfy the check
// digit arithmetic but are not valid documents.
func allSameDigits(digits string) bool {
	return strings.Count(digits, string(digits[0])) == len(digits)
}

func validCPF(digits string) bool {
	if allSameDigits(digits) {
		return false
	}
	d := toDigits(digits)

	sum := 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (10 - i)
	}
	if checkDigitCPF(sum) != d[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += d[i] * (11 - i)
	}
	return checkDigitCPF(sum) == d[10]
}

func checkDigitCPF(sum int) int {
	r := sum * 10 % 11
	if r == 10 {
		return 0
	}
	return r
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func validCNPJ(digits string) bool {
	if allSameDigits(digits) {
		return false
	}
	d := toDigits(digits)

	if checkDigitCNPJ(d, cnpjWeightsFirst) != d[12] {
		return false
	}
	return checkDigitCNPJ(d, cnpjWeightsSecond) == d[13]
}

func checkDigitCNPJ(d []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func toDigits(s string) []int {
	out := make([]int, len(s))
	for i, c := range s {
		out[i] = int(c - '0')
	}
	return out
}
