package helpers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the shared validator, reporting field names by their
// json tag so validation errors line up with the payload keys.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// FormatValidationErrors flattens validator errors into the field->message
// map the admin forms render next to their inputs.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := lowerFirst(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s alanı zorunludur.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s geçerli bir e-posta adresi olmalıdır.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s en az %s karakter olmalıdır.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s en fazla %s karakter olmalıdır.", err.Field(), err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s şunlardan biri olmalıdır: %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s alanı %s doğrulamasından geçemedi.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

// lowerFirst maps exported Go field names onto the camelCase keys the JSON
// payloads use, e.g. "ShortDescription" -> "shortDescription".
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
