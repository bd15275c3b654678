package utils

import (
	"regexp"
	"strings"
)

var phoneCleaner = regexp.MustCompile(`[\s\-\(\)]`)

// NormalizeSenegalPhone strips separators and forces the +221 prefix, so that
// "77 123 45 67" and "+221771234567" normalize to the same stored value.
func NormalizeSenegalPhone(phone string) string {
	phone = phoneCleaner.ReplaceAllString(phone, "")

	if strings.HasPrefix(phone, "+221") {
		return phone
	}
	if strings.HasPrefix(phone, "221") {
		return "+" + phone
	}
	return "+221" + phone
}

// IsValidSenegalPhone reports whether the normalized number is a valid
// Senegalese mobile number: +221 followed by 9 digits, the first of which is
// 6, 7 or 8.
func IsValidSenegalPhone(phone string) bool {
	phone = NormalizeSenegalPhone(phone)

	if !strings.HasPrefix(phone, "+221") {
		return false
	}
	if len(phone) != 13 {
		return false
	}

	first := phone[4]
	if first != '6' && first != '7' && first != '8' {
		return false
	}

	for i := 4; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// IsValidSenegalNCI reports whether the value is a valid Senegalese national
// identity card number: exactly 13 digits starting with 1 or 2.
func IsValidSenegalNCI(nci string) bool {
	nci = strings.TrimSpace(nci)

	if len(nci) != 13 {
		return false
	}
	if nci[0] != '1' && nci[0] != '2' {
		return false
	}
	for i := 0; i < len(nci); i++ {
		if nci[i] < '0' || nci[i] > '9' {
			return false
		}
	}
	return true
}
