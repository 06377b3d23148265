package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// IsValidEmail reports whether email looks like local@domain.tld. This is a
// plausibility check, not RFC 5322.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
