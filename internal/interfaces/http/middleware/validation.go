package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/movements/backend/internal/domain/shared"
)

// SetupValidator registers the custom validation tags and makes error
// messages use the JSON field names. Call once at startup.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("cpfcnpj", func(fl validator.FieldLevel) bool {
		return shared.ValidDocument(fl.Field().String())
	})
	_ = v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		return shared.ValidPhone(fl.Field().String())
	})
}

// FormatBindingFailures turns a gin binding error into the per-field
// failure messages of the wire contract. Non-validator errors (malformed
// JSON, type mismatches) collapse into a single generic message.
func FormatBindingFailures(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Request payload is malformed"}
	}

	failures := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		failures = append(failures, e.Field()+": "+validationMessage(e))
	}
	return failures
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "cpfcnpj":
		return "Not a valid CPF or CNPJ"
	case "brphone":
		return "Not a valid phone number"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	default:
		return "Invalid value"
	}
}
