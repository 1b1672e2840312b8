// Package validation evaluates declarative per-field constraint lists
// against untyped request payloads. Every rule in a set runs; violations are
// collected in declaration order rather than short-circuiting on the first
// failure, so one response carries the complete list.
package validation

import (
	"regexp"
	"strings"
	"time"

	"woofer/internal/common"
)

// Violation is one failed constraint, reported to the client verbatim.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckFunc reports whether a raw field value satisfies a constraint. Checks
// are pure; they never consult storage.
type CheckFunc func(value string) bool

// Rule binds a field name to a single constraint and its failure message.
type Rule struct {
	Field   string
	Check   CheckFunc
	Message string
}

// RuleSet is an ordered list of rules evaluated together.
type RuleSet []Rule

// Error carries the aggregate violation list for a rejected payload. It
// unwraps to common.ErrValidation so handlers can map it to a 422.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error {
	return common.ErrValidation
}

// Validate runs every rule against the payload and returns nil when all
// pass, or an *Error with one Violation per failed rule.
func (rs RuleSet) Validate(payload map[string]string) *Error {
	var violations []Violation
	for _, rule := range rs {
		if !rule.Check(payload[rule.Field]) {
			violations = append(violations, Violation{Field: rule.Field, Message: rule.Message})
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}

var (
	alphanumericRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRe        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// MinLength requires at least n characters.
func MinLength(n int) CheckFunc {
	return func(value string) bool {
		return len(value) >= n
	}
}

// Alphanumeric requires a non-empty value of letters and digits only.
func Alphanumeric(value string) bool {
	return alphanumericRe.MatchString(value)
}

// NotEmpty requires a value with at least one non-whitespace character.
func NotEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email requires a plausible address: local part, @, domain with a dot.
func Email(value string) bool {
	return emailRe.MatchString(value)
}

// ISODate requires a calendar date in YYYY-MM-DD form.
func ISODate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
