package apperrors

import (
	"errors"
	"net/http"
)

// Status maps a gateway error to the HTTP status code it should produce.
// Unrecognized errors map to 500.
func Status(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Code {
	case CodeInvalidInput, CodePlaylist:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Detail returns the richest loggable description of err: the user-safe
// message plus internal details when present.
func Detail(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Internal == "" {
		return err.Error()
	}
	return appErr.Message + ": " + appErr.Internal
}
