// Package apperrors provides typed error handling for the gateway.
// It uses struct-based errors with separate user-safe and internal messages.
package apperrors

import "fmt"

// Code categorizes errors for consistent handling across the gateway.
type Code int

// Error codes for categorizing gateway errors.
const (
	// CodeUnknown indicates an unspecified error type
	CodeUnknown Code = iota
	// CodeInvalidInput indicates malformed or invalid input
	CodeInvalidInput
	// CodeUnauthorized indicates authentication is required
	CodeUnauthorized
	// CodeForbidden indicates the supplied credentials were rejected
	CodeForbidden
	// CodeUpstream indicates a failure talking to the schedule provider
	CodeUpstream
	// CodePlaylist indicates a failure from the playlist collaborator
	CodePlaylist
	// CodeTimeout indicates an outbound call exceeded its deadline
	CodeTimeout
)

// Error represents a gateway error with separate user-safe and internal messages.
// The Message field is always safe to expose to clients.
// The Internal field contains debugging details and should only be logged.
type Error struct {
	Code     Code   // Error category for handler mapping
	Message  string // User-safe message (always exposable)
	Internal string // Internal details (for logging only)
	Err      error  // Wrapped underlying error
}

// Error implements the error interface.
// Returns the user-safe message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithInternal adds internal debugging details to the error.
func (e *Error) WithInternal(format string, args ...any) *Error {
	e.Internal = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps an underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// Is reports whether target matches this error's code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeInvalidInput:
		return "invalid_input"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeForbidden:
		return "forbidden"
	case CodeUpstream:
		return "upstream"
	case CodePlaylist:
		return "playlist"
	case CodeTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("unknown_code_%d", c)
	}
}

// InvalidInput creates a new invalid input error with the given message.
func InvalidInput(message string) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Message: message,
	}
}

// Unauthorized creates a new unauthorized error with the given message.
func Unauthorized(message string) *Error {
	return &Error{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// Forbidden creates a new forbidden error with the given message.
func Forbidden(message string) *Error {
	return &Error{
		Code:    CodeForbidden,
		Message: message,
	}
}

// Upstream creates a new upstream failure error with the given message.
func Upstream(message string) *Error {
	return &Error{
		Code:    CodeUpstream,
		Message: message,
	}
}

// Playlist creates a new playlist collaborator error with the given message.
func Playlist(message string) *Error {
	return &Error{
		Code:    CodePlaylist,
		Message: message,
	}
}

// Timeout creates a new timeout error with the given message.
func Timeout(message string) *Error {
	return &Error{
		Code:    CodeTimeout,
		Message: message,
	}
}
