package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports rejected user input. It is answered to the client
// as a 4xx payload, never treated as a server fault.
type ValidationError struct {
	Code   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Errors, "; "))
}

func NewValidationError(errs ...string) error {
	return &ValidationError{
		Code:   "validationError",
		Errors: errs,
	}
}

// SessionError reports a missing or expired wizard session.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(msg string) error {
	return &SessionError{
		Code:    "sessionError",
		Message: msg,
	}
}
