package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, safe to show to clients.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors.
//   - Details: text of the underlying cause, for diagnostics only.
//
// Callers never branch on Details; it exists so an operator can see what
// the database actually said.
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Errors  []FieldError
	Details string

	cause error
}

// Response is the JSON failure envelope written for an HTTPError.
type Response struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details string       `json:"details,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any, to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is also an *HTTPError. It does NOT compare
// Code/Status; use errors.As and inspect the fields for that.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// Response builds the failure envelope. Details are dropped unless
// withDetails is set.
func (e *HTTPError) Response(withDetails bool) Response {
	resp := Response{
		Success: false,
		Error:   e.Message,
		Code:    e.Code,
		Errors:  e.Errors,
	}
	if withDetails {
		resp.Details = e.Details
	}
	return resp
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
