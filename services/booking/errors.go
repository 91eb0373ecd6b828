package booking

import (
	"errors"
	"fmt"
)

var ErrSessionNotFound = errors.New("booking session not found or expired")

// SessionError is an action the current session state does not allow.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(code, msg string) error {
	return &SessionError{
		Code:    code,
		Message: msg,
	}
}
