package cleanse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"placeholder dash", "-", 0},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"thousands separator", "1,234", 1234},
		{"not-out asterisk", "50.25*", 50.25},
		{"plain integer", "100", 100},
		{"plain float", "39.78", 39.78},
		{"letters only", "abc", 0},
		{"trailing dash", "100-", 100},
		{"surrounding whitespace", "  45 ", 45},
		{"stray characters", "1,2a3", 123},
		{"two decimal points", "1.2.3", 0},
		{"lone dot", ".", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Number(tt.raw))
		})
	}
}

func TestInteger(t *testing.T) {
	assert.Equal(t, 1234, Integer("1,234"))
	assert.Equal(t, 0, Integer("-"))
	assert.Equal(t, 0, Integer(""))
	assert.Equal(t, 50, Integer("50.25*"))
}
