package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/letuankiet/usersdesk/internal/errs"
)

// ErrCode reports the Code of the database error inside err, Other when err
// carries none.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a raw *pgconn.PgError into *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:         MapCode(src.Code),
		Severity:     src.Severity,
		DatabaseCode: src.Code,
		Message:      src.Message,
		TableName:    src.TableName,
		ColumnName:   src.ColumnName,
		driverErr:    src,
	}
}

// requiredCode builds "<ENTITY>_REQUIRED" from the table name:
// nature_slides -> NATURE_SLIDE_REQUIRED.
func requiredCode(tableName string) string {
	if tableName == "" {
		tableName = "record"
	}
	return strings.ToUpper(strings.TrimSuffix(tableName, "s")) + "_REQUIRED"
}

// humanizeText converts snake_case into Title Case: "created_at" -> "Created At".
func humanizeText(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

func notNullError(sqlErr *Error) *errs.HTTPError {
	field := "field"
	if sqlErr.ColumnName != "" {
		field = humanizeText(sqlErr.ColumnName)
	}
	code := requiredCode(sqlErr.TableName)

	return errs.NewBadRequestError(
		fmt.Sprintf("The %s is required", field),
		&code,
		[]errs.FieldError{{Field: strings.ToLower(sqlErr.ColumnName), Error: "is required"}},
	)
}

// HandleError converts a failed store call into an application error.
//
// message is the opaque client message used for a plain store failure
// ("Failed to update user").
//
//   - *errs.HTTPError: returned unchanged
//   - NOT NULL violation: 400 with a field error
//   - pgx.ErrNoRows: 404
//   - anything else: errs.NewStoreError(message, err)
func HandleError(err error, message string) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		if sqlErr.Code == NotNullViolation {
			return notNullError(sqlErr)
		}
		return errs.NewStoreError(message, sqlErr)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewStoreError(message, err)
}
