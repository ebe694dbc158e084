// Package validate is a declarative field validation engine. Each entity
// declares its rule table by listing rules per field; the engine trims,
// normalizes and checks values, accumulating every violation so the caller
// gets the full set in one response.
package validate

import (
	"fmt"
	"strings"
)

// FieldError names a violated field and the reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the accumulated set of field violations for one payload.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a violation.
func (e *Errors) Add(field, format string, args ...any) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Err returns the set as an error, or nil when no field was violated.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// StringRule checks a trimmed string value and may rewrite it (digit
// stripping, lower-casing). Rules run in declaration order; the first
// failing rule for a field wins.
type StringRule func(s string) (string, error)

// NumberRule checks a numeric value.
type NumberRule func(v float64) error

// Required validates a required string field in place. Empty or
// whitespace-only values are violations.
func Required(errs *Errors, field string, value *string, rules ...StringRule) {
	s := strings.TrimSpace(*value)
	if s == "" {
		errs.Add(field, "is required")
		return
	}
	s, ok := apply(errs, field, s, rules)
	if ok {
		*value = s
	}
}

// Optional validates an optional string field in place. Nil, empty and
// whitespace-only values are treated as absent.
func Optional(errs *Errors, field string, value **string, rules ...StringRule) {
	if *value == nil {
		return
	}
	s := strings.TrimSpace(**value)
	if s == "" {
		*value = nil
		return
	}
	s, ok := apply(errs, field, s, rules)
	if ok {
		*value = &s
	}
}

// Number validates a required numeric field.
func Number(errs *Errors, field string, v float64, rules ...NumberRule) {
	for _, r := range rules {
		if err := r(v); err != nil {
			errs.Add(field, "%s", err.Error())
			return
		}
	}
}

// OptionalNumber validates a numeric field that may be absent.
func OptionalNumber(errs *Errors, field string, v *float64, rules ...NumberRule) {
	if v == nil {
		return
	}
	Number(errs, field, *v, rules...)
}

// OptionalInt validates an integer field that may be absent.
func OptionalInt(errs *Errors, field string, v *int, rules ...NumberRule) {
	if v == nil {
		return
	}
	Number(errs, field, float64(*v), rules...)
}

func apply(errs *Errors, field, s string, rules []StringRule) (string, bool) {
	for _, r := range rules {
		var err error
		s, err = r(s)
		if err != nil {
			errs.Add(field, "%s", err.Error())
			return "", false
		}
	}
	return s, true
}
