package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letuankiet/usersdesk/internal/repository"
	"github.com/letuankiet/usersdesk/internal/repository/repotest"
)

func TestSlideService_InitializeTwiceKeepsInitialSet(t *testing.T) {
	ctx := context.Background()
	svc := NewSlideService(repotest.NewSlides())

	inserted, err := svc.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(repository.InitialSlides), inserted)

	inserted, err = svc.Initialize(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	slides, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, slides, len(repository.InitialSlides))
}

func TestSlideService_ResetAlwaysLeavesResetSet(t *testing.T) {
	ctx := context.Background()
	svc := NewSlideService(repotest.NewSlides())

	_, err := svc.Initialize(ctx)
	require.NoError(t, err)

	for range 2 {
		require.NoError(t, svc.Reset(ctx))

		slides, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, slides, len(repository.ResetSlides))
		for i, s := range slides {
			assert.Equal(t, repository.ResetSlides[i].Title, s.Title)
			assert.Equal(t, repository.ResetSlides[i].Src, s.Src)
		}
	}
}

func TestSlideService_StoreFailure(t *testing.T) {
	repo := repotest.NewSlides()
	repo.Err = errors.New("relation does not exist")
	svc := NewSlideService(repo)

	_, err := svc.List(context.Background())
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Failed to fetch nature slides", httpErr.Message)

	httpErr = requireHTTPError(t, svc.Reset(context.Background()), http.StatusInternalServerError)
	assert.Equal(t, "Failed to reset nature slides", httpErr.Message)
}
