package errs

import (
	"net/http"
)

// CodeStoreError marks failures of the underlying database call.
const CodeStoreError = "STORE_ERROR"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewStoreError creates a 500 HTTPError for a failed database call.
//
// message is the opaque text the client sees ("Failed to get users");
// cause is kept for errors.Is/As and copied into Details.
func NewStoreError(message string, cause error) *HTTPError {
	e := &HTTPError{
		Code:    CodeStoreError,
		Message: message,
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError for
// failures nobody anticipated. The message is the generic status text.
func NewInternalServerError(cause error) *HTTPError {
	e := &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}
