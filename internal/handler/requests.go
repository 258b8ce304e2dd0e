package handler

import (
	"strconv"

	"github.com/letuankiet/usersdesk/internal/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// EmptyRequest is used by routes without input.
type EmptyRequest struct{}

func (*EmptyRequest) Validate() error { return nil }

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

func (*CreateUserRequest) ValidationMessage() string {
	return "Name and email are required"
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validation.CustomValidationErrors{{Field: "id", Message: "must be an integer"}}
	}
	return id, nil
}

// UserIDRequest addresses one user by the :id path parameter.
type UserIDRequest struct {
	RawID string `param:"id"`

	id int64
}

func (r *UserIDRequest) Validate() error {
	id, err := parseUserID(r.RawID)
	if err != nil {
		return err
	}
	r.id = id
	return nil
}

func (*UserIDRequest) ValidationMessage() string {
	return "Invalid user id"
}

// ID is valid once Validate succeeded.
func (r *UserIDRequest) ID() int64 { return r.id }

type UpdateUserRequest struct {
	RawID string `param:"id" json:"-"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`

	id      int64
	message string
}

func (r *UpdateUserRequest) Validate() error {
	id, err := parseUserID(r.RawID)
	if err != nil {
		r.message = "Invalid user id"
		return err
	}
	r.id = id

	r.message = "Name and email are required"
	return validation.Struct(r)
}

func (r *UpdateUserRequest) ValidationMessage() string {
	return r.message
}

func (r *UpdateUserRequest) ID() int64 { return r.id }

type SearchUsersRequest struct {
	Query string `query:"q" validate:"required"`
}

func (r *SearchUsersRequest) Validate() error {
	return validation.Struct(r)
}

func (*SearchUsersRequest) ValidationMessage() string {
	return "Search query is required"
}

// PaginateUsersRequest binds page and limit as text so a non-numeric value
// is a validation failure rather than a bind failure.
type PaginateUsersRequest struct {
	RawPage  string `query:"page"`
	RawLimit string `query:"limit"`

	page  int
	limit int
}

func (r *PaginateUsersRequest) Validate() error {
	var problems validation.CustomValidationErrors

	r.page = defaultPage
	if r.RawPage != "" {
		page, err := strconv.Atoi(r.RawPage)
		if err != nil || page < 1 {
			problems = append(problems, validation.CustomValidationError{Field: "page", Message: "must be an integer of at least 1"})
		} else {
			r.page = page
		}
	}

	r.limit = defaultLimit
	if r.RawLimit != "" {
		limit, err := strconv.Atoi(r.RawLimit)
		if err != nil || limit < 1 || limit > maxLimit {
			problems = append(problems, validation.CustomValidationError{Field: "limit", Message: "must be an integer between 1 and 100"})
		} else {
			r.limit = limit
		}
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

func (*PaginateUsersRequest) ValidationMessage() string {
	return "Invalid pagination parameters"
}

func (r *PaginateUsersRequest) Page() int  { return r.page }
func (r *PaginateUsersRequest) Limit() int { return r.limit }
