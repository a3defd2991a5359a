// Package form maps gin binding failures onto per-field error messages
// suitable for re-rendering an HTML form.
package form

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Errors converts a binding error into a map keyed by the form field name.
// Unrecognized errors collapse into a single message under "form".
func Errors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Invalid form submission."
		return out
	}

	for _, fe := range verrs {
		out[fieldName(fe.Field())] = message(fe)
	}
	return out
}

// fieldName converts a struct field name into its form field name,
// e.g. FirstName -> first_name.
func fieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// message renders a human-readable error for a single failed validation tag.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}
