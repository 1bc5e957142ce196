package service

import (
	"regexp"

	"contact-back/internal/apperrors"
)

const (
	maxNameLength    = 100
	maxMessageLength = 5000
)

// Same pattern the public form enforces client-side: non-empty local part,
// non-empty domain with at least one dot, no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateInquiry checks a submission before any side effect happens.
// It is pure and short-circuits on the first violation, checking
// name, then email, then message. Lengths are counted in runes so a
// 100-character Hangul name passes just like an ASCII one.
func ValidateInquiry(name, email, message string) error {
	if name == "" || len([]rune(name)) > maxNameLength {
		return apperrors.ErrInvalidName
	}

	if email == "" || !emailPattern.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}

	if message == "" || len([]rune(message)) > maxMessageLength {
		return apperrors.ErrInvalidMessage
	}

	return nil
}
