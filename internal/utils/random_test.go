package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		password := GeneratePassword()
		assert.Len(t, password, 12)
		assert.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9]{12}$`), password)
		seen[password] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerateVerificationCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateVerificationCode()
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
	}
}

func TestGenerateNumeroCompte(t *testing.T) {
	for i := 0; i < 20; i++ {
		numero := GenerateNumeroCompte()
		assert.Regexp(t, regexp.MustCompile(`^CPT\d{6}$`), numero)
	}
}
