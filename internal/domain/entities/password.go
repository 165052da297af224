package entities

import (
	"unicode"

	"identity-service/internal/domain"
)

// ValidatePassword enforces the credential policy: at least 8
// characters with one uppercase letter, one lowercase letter, one
// digit and one special character.
func ValidatePassword(plain string) error {
	if len(plain) < 8 {
		return domain.NewValidationError("password", "password must be at least 8 characters")
	}
	var upper, lower, digit, special bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	if !upper {
		return domain.NewValidationError("password", "password must contain an uppercase letter")
	}
	if !lower {
		return domain.NewValidationError("password", "password must contain a lowercase letter")
	}
	if !digit {
		return domain.NewValidationError("password", "password must contain a digit")
	}
	if !special {
		return domain.NewValidationError("password", "password must contain a special character")
	}
	return nil
}
