// Package validation holds pure judgment functions for externally supplied
// values. Every function is total: bad input yields a negative judgment,
// never a panic or an error.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// NoMax disables the upper bound of IsValidLength.
const NoMax = math.MaxInt

// Pragmatic email shape: local@domain.tld, no whitespace. Not a full RFC parser.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether v is a string whose trimmed form looks like an
// email address.
func IsValidEmail(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsValidID reports whether v represents a strictly positive integer
// identifier. Decoded JSON numbers arrive as float64; numeric strings are
// accepted, floats and non-numeric values are not.
func IsValidID(v any) bool {
	switch n := v.(type) {
	case nil:
		return false
	case int:
		return n > 0
	case int32:
		return n > 0
	case int64:
		return n > 0
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0) && n == math.Trunc(n) && n > 0
	case string:
		id, ok := ValidateIDParam(n)
		return ok && id > 0
	default:
		return false
	}
}

// ValidateIDParam parses a path parameter into an identifier. The second
// return is false for anything that is not a strictly positive integer.
func ValidateIDParam(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// IsValidLength reports whether v is a string whose trimmed length lies in
// [min, max]. A nil value passes only when min is zero. Pass NoMax to leave
// the upper bound open.
func IsValidLength(v any, min, max int) bool {
	if v == nil {
		return min == 0
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= min && n <= max
}

// PasswordJudgment is the outcome of ValidatePassword.
type PasswordJudgment struct {
	Valid   bool
	Message string
}

// ValidatePassword checks presence and minimum length of a candidate
// password. The password itself is never part of the judgment.
func ValidatePassword(v any, minLength int) PasswordJudgment {
	s, ok := v.(string)
	if !ok || s == "" {
		return PasswordJudgment{Valid: false, Message: "Password is required"}
	}
	if utf8.RuneCountInString(s) < minLength {
		return PasswordJudgment{
			Valid:   false,
			Message: fmt.Sprintf("Password must be at least %d characters long", minLength),
		}
	}
	return PasswordJudgment{Valid: true, Message: "Password is valid"}
}

// FieldsJudgment is the outcome of ValidateRequiredFields. Missing preserves
// the order of the required-field list.
type FieldsJudgment struct {
	Valid   bool
	Missing []string
}

// ValidateRequiredFields checks that every named field is present in data.
// A field is missing when it is absent, nil, or the empty string.
func ValidateRequiredFields(data map[string]any, required []string) FieldsJudgment {
	var missing []string
	for _, field := range required {
		v, ok := data[field]
		if !ok || v == nil || v == "" {
			missing = append(missing, field)
		}
	}
	return FieldsJudgment{Valid: len(missing) == 0, Missing: missing}
}
