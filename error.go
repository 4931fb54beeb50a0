package htmltext

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to transport-level errors if
// the package is ever embedded in a service. EINTERNAL is reserved for
// errors that should never reach a caller in normal operation.
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"
)

// Error represents an application-specific error. Errors can be unwrapped
// to discover the code and a human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("htmltext error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code. Non-application
// errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
