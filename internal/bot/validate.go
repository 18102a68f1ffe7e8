package bot

import (
	"regexp"
	"strings"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z ]{2,40}$`)
	phoneRe = regexp.MustCompile(`^(\+91)?[6-9][0-9]{9}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidName reports whether s is usable as a first or last name: letters and
// spaces, 2-40 characters.
func ValidName(s string) bool {
	return nameRe.MatchString(strings.TrimSpace(s))
}

// ValidPhone accepts Indian mobile numbers, 10 digits with or without the
// +91 prefix. Spaces and dashes are ignored.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(stripPhone(s))
}

// FormatPhone normalizes a valid phone number to canonical +91 form.
func FormatPhone(s string) string {
	s = stripPhone(s)
	if strings.HasPrefix(s, "+91") {
		return s
	}
	return "+91" + s
}

// ValidEmail is a syntactic check only; deliverability is out of scope.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

func stripPhone(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

func trimmed(s string) string { return strings.TrimSpace(s) }

func isSkip(s string) bool { return strings.EqualFold(trimmed(s), "skip") }

// skippable maps the literal answer "skip" to an absent field.
func skippable(s string) string {
	if isSkip(s) {
		return ""
	}
	return trimmed(s)
}
