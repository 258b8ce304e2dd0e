package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/letuankiet/usersdesk/internal/model"
	"github.com/letuankiet/usersdesk/internal/repository"
	"github.com/letuankiet/usersdesk/internal/sqlerr"
)

type SlideService struct {
	repo repository.SlideRepository
}

func NewSlideService(repo repository.SlideRepository) *SlideService {
	return &SlideService{repo: repo}
}

func (s *SlideService) List(ctx context.Context) ([]model.NatureSlide, error) {
	slides, err := s.repo.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list nature slides")
		return nil, sqlerr.HandleError(err, "Failed to fetch nature slides")
	}
	return slides, nil
}

// Initialize seeds the slide table when it is empty. It returns the number
// of slides inserted, zero when the table already had rows.
func (s *SlideService) Initialize(ctx context.Context) (int, error) {
	inserted, err := s.repo.InitializeIfEmpty(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to initialize nature slides")
		return 0, sqlerr.HandleError(err, "Failed to initialize database")
	}

	zerolog.Ctx(ctx).Info().Int("inserted", inserted).Msg("nature slides initialized")
	return inserted, nil
}

// Reset replaces every slide with the reset seed set.
func (s *SlideService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to reset nature slides")
		return sqlerr.HandleError(err, "Failed to reset nature slides")
	}

	zerolog.Ctx(ctx).Warn().Int("slides", len(repository.ResetSlides)).Msg("nature slides reset")
	return nil
}
