package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letuankiet/usersdesk/internal/errs"
)

type signup struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"min=18"`
}

func (s *signup) Validate() error { return Struct(s) }

type withMessage struct {
	Name string `json:"name" validate:"required"`
}

func (w *withMessage) Validate() error          { return Struct(w) }
func (w *withMessage) ValidationMessage() string { return "Name is required" }

type custom struct{}

func (custom) Validate() error {
	return CustomValidationErrors{{Field: "id", Message: "must be an integer"}}
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate_OK(t *testing.T) {
	var s signup
	require.NoError(t, BindAndValidate(newContext(`{"name":"Ann","email":"ann@example.com","age":30}`), &s))
	assert.Equal(t, "Ann", s.Name)
}

func TestBindAndValidate_FieldErrorsUseWireNames(t *testing.T) {
	var s signup
	httpErr := asHTTPError(t, BindAndValidate(newContext(`{"email":"nope","age":3}`), &s))

	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "email", Error: "must be a valid email address"},
		{Field: "age", Error: "must be at least 18"},
	}, httpErr.Errors)
}

func TestBindAndValidate_PayloadMessage(t *testing.T) {
	var w withMessage
	httpErr := asHTTPError(t, BindAndValidate(newContext(`{}`), &w))
	assert.Equal(t, "Name is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	var s signup
	httpErr := asHTTPError(t, BindAndValidate(newContext(`{"name":`), &s))
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	var c custom
	httpErr := asHTTPError(t, BindAndValidate(newContext(``), &c))
	assert.Equal(t, []errs.FieldError{{Field: "id", Error: "must be an integer"}}, httpErr.Errors)
}
