package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSenegalPhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+221771234567", "+221771234567"},
		{"221771234567", "+221771234567"},
		{"771234567", "+221771234567"},
		{"77 123 45 67", "+221771234567"},
		{"77-123-45-67", "+221771234567"},
		{"(77) 123 45 67", "+221771234567"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSenegalPhone(tt.input))
		})
	}
}

func TestIsValidSenegalPhone(t *testing.T) {
	valid := []string{
		"+221771234567",
		"771234567",
		"+221601234567",
		"+221881234567",
		"78 123 45 67",
	}
	for _, phone := range valid {
		assert.True(t, IsValidSenegalPhone(phone), phone)
	}

	invalid := []string{
		"",
		"+221551234567",  // landline prefix
		"+22177123456",   // too short
		"+2217712345678", // too long
		"+33612345678",   // wrong country
		"+22177123456a",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidSenegalPhone(phone), phone)
	}
}

func TestIsValidSenegalNCI(t *testing.T) {
	assert.True(t, IsValidSenegalNCI("1234567890123"))
	assert.True(t, IsValidSenegalNCI("2765432109876"))
	assert.True(t, IsValidSenegalNCI(" 1234567890123 "))

	assert.False(t, IsValidSenegalNCI("3234567890123")) // bad leading digit
	assert.False(t, IsValidSenegalNCI("123456789012"))  // 12 digits
	assert.False(t, IsValidSenegalNCI("12345678901234"))
	assert.False(t, IsValidSenegalNCI("12345678901a3"))
	assert.False(t, IsValidSenegalNCI(""))
}
