package cardex

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText collapses runs of whitespace (including non-breaking spaces)
// into single spaces and trims the result. The text is also composed to NFC
// so that visually identical names compare equal.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

var (
	integerRe = regexp.MustCompile(`^\d+$`)
	digitsRe  = regexp.MustCompile(`\d+`)
)

// IsInteger reports whether s is a bare non-negative integer.
func IsInteger(s string) bool {
	return integerRe.MatchString(s)
}

// LeadingInteger returns the first run of digits in s.
// The bool result is false if s contains no digits.
func LeadingInteger(s string) (string, bool) {
	m := digitsRe.FindString(s)
	return m, m != ""
}
