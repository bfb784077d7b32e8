package exporter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{13.4, "13.40"},
		{3.85, "3.85"},
		{(3.8 + 3.9) / 2, "3.85"},
		{-1.005, "-1.00"},
		{1234567.891, "1234567.89"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in), "input %v", tt.in)
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"925.594", "925.59"},
		{"86000.375", "86000.38"},
		{"-0.005", "-0.01"},
		{"57572.52", "57572.52"},
		{"2499.9", "2499.90"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDecimal(decimal.RequireFromString(tt.in)), "input %s", tt.in)
	}
}

func TestFormatScalars(t *testing.T) {
	assert.Equal(t, "42", formatInt(42))
	assert.Equal(t, "-7", formatInt(-7))
	assert.Equal(t, "true", formatBool(true))
	assert.Equal(t, "false", formatBool(false))

	id := int64(12)
	assert.Equal(t, "12", formatID(&id))
	assert.Equal(t, "", formatID(nil))
}
