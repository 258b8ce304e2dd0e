package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateUsersRequest_Defaults(t *testing.T) {
	r := &PaginateUsersRequest{}
	require.NoError(t, r.Validate())
	assert.Equal(t, defaultPage, r.Page())
	assert.Equal(t, defaultLimit, r.Limit())
}

func TestPaginateUsersRequest_Valid(t *testing.T) {
	r := &PaginateUsersRequest{RawPage: "3", RawLimit: "100"}
	require.NoError(t, r.Validate())
	assert.Equal(t, 3, r.Page())
	assert.Equal(t, 100, r.Limit())
}

func TestPaginateUsersRequest_InvalidKeepsDefaults(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		limit    string
		problems int
	}{
		{name: "page zero", page: "0", problems: 1},
		{name: "page negative", page: "-4", problems: 1},
		{name: "page not numeric", page: "abc", problems: 1},
		{name: "limit too large", limit: "101", problems: 1},
		{name: "both bad", page: "x", limit: "0", problems: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &PaginateUsersRequest{RawPage: tt.page, RawLimit: tt.limit}

			err := r.Validate()
			require.Error(t, err)
			assert.Len(t, err, tt.problems)
			assert.Equal(t, defaultPage, r.Page())
			assert.Equal(t, defaultLimit, r.Limit())
		})
	}
}

func TestUserIDRequest_StrictParsing(t *testing.T) {
	for _, raw := range []string{"12abc", "", "1.5", " 7"} {
		r := &UserIDRequest{RawID: raw}
		assert.Error(t, r.Validate(), raw)
	}

	r := &UserIDRequest{RawID: "-3"}
	require.NoError(t, r.Validate())
	assert.Equal(t, int64(-3), r.ID())
}
