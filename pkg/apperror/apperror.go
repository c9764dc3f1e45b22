// Package apperror provides the named error values used for classification
// across all layers. An Error carries a namespaced name (e.g.
// "task/task_not_yours"), a human-readable message, and an optional wrapped
// cause.
package apperror

import (
	"errors"
	"fmt"
)

// Error is a named, causal error.
type Error struct {
	Name    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New constructs a named error with no cause.
func New(name, message string) *Error {
	return &Error{Name: name, Message: message}
}

// Newf constructs a named error with a formatted message.
func Newf(name, format string, args ...any) *Error {
	return &Error{Name: name, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags cause with a name and message. If cause is already a named error
// it is returned unchanged, so the first classification wins.
func Wrap(cause error, name, message string) *Error {
	var named *Error
	if errors.As(cause, &named) {
		return named
	}
	return &Error{Name: name, Message: message, Cause: cause}
}

// NameOf returns the name of err, or "" when err is nil or not a named error.
func NameOf(err error) string {
	var named *Error
	if errors.As(err, &named) {
		return named.Name
	}
	return ""
}

// HasName reports whether err is a named error carrying name.
func HasName(err error, name string) bool {
	return NameOf(err) == name
}
