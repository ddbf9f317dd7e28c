package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the given address matches the email pattern.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsValidPassword reports whether the password satisfies the minimum
// length requirement.
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// IsValidName reports whether a first/last name is within bounds.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}
