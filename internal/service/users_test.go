package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letuankiet/usersdesk/internal/errs"
	"github.com/letuankiet/usersdesk/internal/model"
	"github.com/letuankiet/usersdesk/internal/repository/repotest"
)

func requireHTTPError(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestUserService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repotest.NewUsers())

	created, err := svc.Create(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "ann@example.com", got.Email)
}

func TestUserService_CreatedAtIsNotBeforeTheCall(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repotest.NewUsers())

	before := time.Now()
	created, err := svc.Create(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.Before(before), "created_at %s is before %s", created.CreatedAt, before)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
}

func TestUserService_Prepare(t *testing.T) {
	repo := repotest.NewUsers()
	svc := NewUserService(repo)

	require.NoError(t, svc.Prepare(context.Background()))
	assert.Equal(t, 1, repo.Calls)

	repo.Err = errors.New("permission denied")
	httpErr := requireHTTPError(t, svc.Prepare(context.Background()), http.StatusInternalServerError)
	assert.Equal(t, "Failed to initialize database", httpErr.Message)
}

func TestUserService_DeleteThenGetIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repotest.NewUsers())

	created, err := svc.Create(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	httpErr := requireHTTPError(t, err, http.StatusNotFound)
	assert.Equal(t, UserNotFoundMessage, httpErr.Message)

	requireHTTPError(t, svc.Delete(ctx, created.ID), http.StatusNotFound)
}

func TestUserService_UpdateMissingIsNotFound(t *testing.T) {
	svc := NewUserService(repotest.NewUsers())

	_, err := svc.Update(context.Background(), 42, "x", "y")
	requireHTTPError(t, err, http.StatusNotFound)
}

func TestUserService_StoreFailureIsOpaque(t *testing.T) {
	repo := repotest.NewUsers()
	repo.Err = errors.New("connection refused")
	svc := NewUserService(repo)

	_, err := svc.List(context.Background())
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Failed to get users", httpErr.Message)
	assert.Equal(t, errs.CodeStoreError, httpErr.Code)
	assert.Equal(t, "connection refused", httpErr.Details)
}

func TestUserService_ConstraintViolationIsBadRequest(t *testing.T) {
	repo := repotest.NewUsers()
	repo.Err = fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "email"})
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), "Ann", "")
	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "USER_REQUIRED", httpErr.Code)
}

func TestUserService_SearchIsCaseInsensitiveOnNameAndEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repotest.NewUsers())

	for _, u := range [][2]string{
		{"Alice Nguyen", "alice@example.com"},
		{"Bob", "BOB.NGUYEN@example.com"},
		{"Carol", "carol@example.com"},
	} {
		_, err := svc.Create(ctx, u[0], u[1])
		require.NoError(t, err)
	}

	found, err := svc.Search(ctx, "nGuYeN")
	require.NoError(t, err)
	require.Len(t, found, 2)

	for _, u := range found {
		assert.NotEqual(t, "Carol", u.Name)
	}
}

func TestUserService_PagesReproduceTheFullList(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repotest.NewUsers())

	for i := range 23 {
		_, err := svc.Create(ctx, fmt.Sprintf("user %d", i), fmt.Sprintf("u%d@example.com", i))
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)

	var paged []model.User
	for page := 1; ; page++ {
		rows, p, err := svc.Paginate(ctx, page, 5)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(rows), 5)
		assert.Equal(t, int64(5), p.TotalPages)
		assert.Equal(t, page > 1, p.HasPrev)

		paged = append(paged, rows...)
		if !p.HasNext {
			break
		}
	}

	assert.Equal(t, all, paged)
}
