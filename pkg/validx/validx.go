// Package validx holds the small input checks shared by the services:
// blank detection, username character set, length limits and id format.
package validx

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/aussiebroadwan/notes/pkg/idx"
)

// usernamePattern allows lowercase letters, digits, dots and underscores.
var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]+$`)

// IsBlank reports whether ANY of the values is empty or only whitespace.
func IsBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// AllBlank reports whether EVERY value is empty or only whitespace.
func AllBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// IsUsernameValid reports whether s only uses the allowed username charset.
func IsUsernameValid(s string) bool {
	return usernamePattern.MatchString(s)
}

// ExceedsLength reports whether any value is max characters or longer.
// Characters are UTF-16 code units, so a rune outside the BMP counts twice.
func ExceedsLength(max int, values ...string) bool {
	for _, v := range values {
		if utf16Len(v) >= max {
			return true
		}
	}
	return false
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// IsID reports whether s is a well formed entity identifier.
func IsID(s string) bool {
	return idx.Valid(s)
}
