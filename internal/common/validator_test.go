package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_CheckNotBlank(t *testing.T) {
	testCases := []struct {
		value string
		valid bool
	}{
		{value: "", valid: false},
		{value: " ", valid: false},
		{value: "\t\n", valid: false},
		{value: "a", valid: true},
		{value: " a ", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			v := NewValidator()
			v.CheckNotBlank(tc.value, "field")
			assert.Equal(t, tc.valid, v.Valid())
			if !tc.valid {
				assert.Equal(t, "must be provided", v.Errors["field"])
			}
		})
	}
}

func TestValidator_CheckEmail(t *testing.T) {
	testCases := []struct {
		email   string
		message string
	}{
		{email: "", message: "must be provided"},
		{email: "a", message: "must be a valid email address"},
		{email: "a@", message: "must be a valid email address"},
		{email: "a@b", message: "must be a valid email address"},
		{email: "a@b.c", message: "must be a valid email address"},
		{email: "a@b.com"},
		{email: "first.last+tag@example.co.uk"},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			v := NewValidator()
			v.CheckEmail(tc.email, "email")
			assert.Equal(t, tc.message, v.Errors["email"])
		})
	}
}

func TestValidator_FirstErrorWins(t *testing.T) {
	v := NewValidator()
	v.Check(false, "title", "first")
	v.Check(false, "title", "second")

	assert.False(t, v.Valid())
	assert.Equal(t, ValidationError{Errors: map[string]string{"title": "first"}}, v.ValidationError())
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("draft", "draft", "published"))
	assert.False(t, PermittedValue("deleted", "draft", "published"))
	assert.False(t, PermittedValue(3))
}

func TestRequiredFieldsError(t *testing.T) {
	err := RequiredFieldsError{Fields: []string{"title", "slug", "content", "authorId"}}
	assert.EqualError(t, err, "Missing required fields: title, slug, content, authorId")
}
