// Package sqlerr handles database driver errors.
//
// It reads the PostgreSQL SQLSTATE of a failed statement and turns it into
// an application error: NOT NULL violations become a 400 with a field error,
// everything else is an opaque store failure.
package sqlerr

import "fmt"

// Code is the category of a database error.
type Code string

// Only the categories the users and nature_slides tables can raise. Neither
// table has foreign keys, unique or check constraints.
const (
	Other             Code = "other"
	NotNullViolation  Code = "not_null_violation"
	UndefinedTable    Code = "undefined_table"
	ConnectionFailure Code = "connection_failure"
)

// Error is a driver-independent view of a database error.
type Error struct {
	Code         Code
	Severity     string
	DatabaseCode string
	Message      string
	TableName    string
	ColumnName   string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// sqlStateCodes maps SQLSTATE values onto Code.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
var sqlStateCodes = map[string]Code{
	"23502": NotNullViolation,
	"42P01": UndefinedTable,
	"08000": ConnectionFailure,
	"08003": ConnectionFailure,
	"08006": ConnectionFailure,
}

// MapCode maps a SQLSTATE onto a Code, Other when unknown.
func MapCode(sqlState string) Code {
	if code, ok := sqlStateCodes[sqlState]; ok {
		return code
	}
	return Other
}
