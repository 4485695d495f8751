package common

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type ValidationError struct {
	Errors map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %+v", e.Errors)
}

// RequiredFieldsError is returned when a create request omits one of the
// fields its resource requires. Fields lists every required field.
type RequiredFieldsError struct {
	Fields []string
}

func (e RequiredFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) CheckStringLength(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

// CheckNotBlank rejects empty and whitespace-only values.
func (v *Validator) CheckNotBlank(s, field string) {
	v.Check(strings.TrimSpace(s) != "", field, "must be provided")
}

func (v *Validator) CheckEmail(email, field string) {
	v.CheckNotBlank(email, field)
	v.Check(EmailRX.MatchString(email), field, "must be a valid email address")
}

func (v *Validator) CheckPositive(num int, field string) {
	v.Check(num > 0, field, "must be greater than zero")
}

// PermittedValue reports whether value is one of permitted.
func PermittedValue[T comparable](value T, permitted ...T) bool {
	for i := range permitted {
		if value == permitted[i] {
			return true
		}
	}
	return false
}

func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.Errors}
}
