package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ten digits", "6175551234", "6175551234"},
		{"formatted", "(617) 555-1234", "6175551234"},
		{"with country code", "+1 617 555 1234", "6175551234"},
		{"eleven digits keeps last ten", "16175551234", "6175551234"},
		{"too short", "555-1234", ""},
		{"empty", "", ""},
		{"letters only", "call me", ""},
		{"digits mixed with text", "phone: 617.555.1234 (cell)", "6175551234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.input))
		})
	}
}

func TestPhoneIdempotent(t *testing.T) {
	inputs := []string{"+1 (617) 555-1234", "6175551234", "bogus", "", "123"}
	for _, in := range inputs {
		once := Phone(in)
		assert.Equal(t, once, Phone(once), "Phone must be idempotent for %q", in)
		if once != "" {
			assert.Len(t, once, 10)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "John", "john"},
		{"diacritics", "José Muñoz", "jose munoz"},
		{"extra whitespace", "  Mary   Ann  ", "mary ann"},
		{"punctuation stripped", "O'Brien-Smith", "obriensmith"},
		{"digits stripped", "John2", "john"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", Email("  Jane@Example.COM "))
	assert.Equal(t, "", Email(""))
}
