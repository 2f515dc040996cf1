package servicearea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInService(t *testing.T) {
	gate := NewGate(nil)

	tests := []struct {
		name string
		zip  string
		want bool
	}{
		{"quincy", "02169", true},
		{"boston downtown", "02110", true},
		{"brockton", "02301", true},
		{"out of area", "99999", false},
		{"zip plus four in area", "02169-1234", true},
		{"zip plus four out of area", "99999-0000", false},
		{"whitespace", "  02169 ", true},
		{"too short", "0216", false},
		{"letters", "0216a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.InService(tt.zip))
		})
	}
}

func TestExtraZips(t *testing.T) {
	gate := NewGate([]string{"0abc1", "03801", " 01002-9999 "})

	assert.True(t, gate.InService("03801"))
	assert.True(t, gate.InService("01002"))
	// Malformed extras are dropped, base list untouched.
	assert.True(t, gate.InService("02169"))
	assert.False(t, gate.InService("0abc1"))
}
