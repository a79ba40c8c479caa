package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pqrchat/backend/internal/validate"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"jane@x.com", true},
		{"user.name@sub.domain.co", true},
		{"bad-email-no-at", false},
		{"missing@tld", false},
		{"spaces in@local.com", false},
		{"@nolocal.com", false},
		{"trailing@dot.", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, validate.Email(c.input), "email %q", c.input)
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"+1 555-1234", true},
		{"3001234567", true},
		{"+57 300 123 45 67", true},
		{"12345", false},
		{"abc12345", false},
		{"+12-4", false},
		{"555x5555", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, validate.Phone(c.input), "phone %q", c.input)
	}
}

func TestDocument(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"A1234", true},
		{"1.020-456", true},
		{"CC-99", true},
		{"abc", false},
		{"a b c d", false},
		{"ID#1234", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, validate.Document(c.input), "document %q", c.input)
	}
}
