package utils

import (
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Indian mobile numbers: ten digits starting with 6-9.
	phoneRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigit     = regexp.MustCompile(`\D`)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// IsValidEmail checks for a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone strips formatting and checks for a ten digit mobile number.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(DigitsOnly(phone))
}

func IsValidPassword(password string) bool {
	return len(password) >= 6
}

// IsRequired reports whether v carries a value. Strings must be non-blank.
func IsRequired(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

// ParseNumber parses a trimmed decimal string and rejects NaN and infinities.
func ParseNumber(value string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func IsValidNumber(value string) bool {
	_, ok := ParseNumber(value)
	return ok
}

func IsValidPositiveNumber(value string) bool {
	n, ok := ParseNumber(value)
	return ok && n > 0
}

// IsValidURL accepts absolute URLs with a scheme and a host.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// DigitsOnly drops every non-digit character.
func DigitsOnly(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// DecimalOnly keeps digits and the first decimal point.
func DecimalOnly(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify lowercases a name and joins its alphanumeric runs with dashes.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
