// Package validation holds plain input validators shared by the service layer.
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

const (
	passwordMinLength = 12
	passwordMaxLength = 128
	usernameMinLength = 3
	usernameMaxLength = 30
	emailMaxLength    = 254
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_]*[a-zA-Z0-9]$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)
)

// ValidatePassword checks password length and character class requirements.
func ValidatePassword(password string) error {
	runes := []rune(password)
	if len(runes) < passwordMinLength {
		return fmt.Errorf("password must be at least %d characters", passwordMinLength)
	}
	if len(runes) > passwordMaxLength {
		return fmt.Errorf("password must be at most %d characters", passwordMaxLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must contain uppercase, lowercase, digit, and special characters")
	}
	return nil
}

// ValidateUsername checks username length and allowed characters.
// Usernames are alphanumeric with interior underscores.
func ValidateUsername(username string) error {
	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		return fmt.Errorf("username must be %d-%d characters", usernameMinLength, usernameMaxLength)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username may only contain letters, numbers, and interior underscores")
	}
	return nil
}

// ValidateEmail checks email length and general shape.
func ValidateEmail(email string) error {
	if len(email) > emailMaxLength {
		return fmt.Errorf("email must be at most %d characters", emailMaxLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
