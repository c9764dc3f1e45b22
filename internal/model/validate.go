package model

import (
	"regexp"
	"strings"
	"time"
)

// Violation is a single field-level schema failure.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Violations is the ordered list produced by a validation pass. Validation
// never aborts early: all fields are checked even after the first failure, so
// identical input always yields the identical list.
type Violations []Violation

func (v Violations) Valid() bool {
	return len(v) == 0
}

func (v Violations) String() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Field + ": " + violation.Reason
	}
	return strings.Join(parts, "; ")
}

var (
	alphanumRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	// Letters (including the accented letters æøå), digits, space, newline,
	// comma and period.
	textRe  = regexp.MustCompile(`^[ a-zA-Z0-9æøåÆØÅ\n.,]+$`)
	emailRe = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

// collector accumulates violations in check order.
type collector struct {
	violations Violations
}

func (c *collector) check(cond bool, field, reason string) {
	if cond {
		return
	}
	c.violations = append(c.violations, Violation{Field: field, Reason: reason})
}

func checkOpaqueID(c *collector, field, value string, required bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			c.check(false, field, "must be a non-empty string")
		}
		return
	}
	c.check(alphanumRe.MatchString(trimmed), field, "must only contain alphanumeric characters")
}

func checkText(c *collector, field, value string, maxLen int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		c.check(false, field, "must be a non-empty string")
		return
	}
	c.check(textRe.MatchString(trimmed), field, "contains illegal characters")
	c.check(len([]rune(trimmed)) <= maxLen, field, "is too long")
}

func checkTimestamp(c *collector, field, value string) {
	if value == "" {
		return
	}
	_, err := time.Parse(time.RFC3339, value)
	c.check(err == nil, field, "must be an ISO date string")
}
