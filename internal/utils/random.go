package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePassword returns a random 12-character secret for a newly
// provisioned client.
func GeneratePassword() string {
	result := make([]byte, 12)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(passwordCharset))))
		result[i] = passwordCharset[num.Int64()]
	}
	return string(result)
}

// GenerateVerificationCode returns a zero-padded 6-digit first-login code.
func GenerateVerificationCode() string {
	num, _ := rand.Int(rand.Reader, big.NewInt(1000000))
	return fmt.Sprintf("%06d", num.Int64())
}

// GenerateNumeroCompte returns a candidate account number of the form
// CPT followed by 6 digits. Uniqueness is the caller's responsibility.
func GenerateNumeroCompte() string {
	num, _ := rand.Int(rand.Reader, big.NewInt(900000))
	return fmt.Sprintf("CPT%d", 100000+num.Int64())
}
