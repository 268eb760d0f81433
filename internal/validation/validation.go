// Package validation holds input validation rules shared by services and handlers.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	maxEmailLength    = 254
	maxNameLength     = 128
)

var usernameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{1,62}[a-z0-9]$`)

// Usernames that collide with route segments or operational surfaces.
var reservedUsernames = map[string]struct{}{
	"admin":   {},
	"api":     {},
	"token":   {},
	"users":   {},
	"friends": {},
	"posts":   {},
	"secrets": {},
	"wyrs":    {},
	"likes":   {},
	"health":  {},
	"metrics": {},
	"login":   {},
	"signup":  {},
	"root":    {},
	"system":  {},
}

// ValidateUsername validates username format and reserved names.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-64 characters of lowercase letters, numbers, underscores, or hyphens, and cannot start or end with a separator")
	}

	if _, exists := reservedUsernames[username]; exists {
		return fmt.Errorf("username is reserved")
	}

	return nil
}

// ValidateEmail validates email format and length.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLength {
		return fmt.Errorf("email must be at most %d characters", maxEmailLength)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email address is not valid")
	}

	domain := email[strings.LastIndex(email, "@")+1:]
	if domain == "" || strings.HasSuffix(domain, ".") || !strings.Contains(domain, ".") {
		return fmt.Errorf("email domain is not valid")
	}

	return nil
}

// ValidateName checks the display name length.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return fmt.Errorf("name must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidatePassword enforces length and character class requirements.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if length > maxPasswordLength {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain an uppercase letter, a lowercase letter, and a digit")
	}

	return nil
}
