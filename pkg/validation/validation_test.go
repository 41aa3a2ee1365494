package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUnits(t *testing.T) {
	tests := []struct {
		units    string
		expected bool
	}{
		{"metric", true},
		{"imperial", true},
		{"standard", true},
		{" Metric ", true},
		{"kelvin", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.units, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidUnits(tt.units))
		})
	}
}

func TestTrimAndValidate(t *testing.T) {
	value, ok := TrimAndValidate("  Paris ")
	assert.True(t, ok)
	assert.Equal(t, "Paris", value)

	value, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.Empty(t, value)
}
