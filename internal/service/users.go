package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/letuankiet/usersdesk/internal/errs"
	"github.com/letuankiet/usersdesk/internal/model"
	"github.com/letuankiet/usersdesk/internal/repository"
	"github.com/letuankiet/usersdesk/internal/sqlerr"
)

// UserNotFoundMessage is returned for get, update and delete of a missing id.
const UserNotFoundMessage = "User not found"

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// fail converts a repository error. message is what the client sees when
// the store itself failed.
func (s *UserService) fail(ctx context.Context, err error, op, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(UserNotFoundMessage, nil)
	}

	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("operation", op).
		Str("db_error", string(sqlerr.ErrCode(err))).
		Msg("user store call failed")
	return sqlerr.HandleError(err, message)
}

// Prepare makes sure the users table exists.
func (s *UserService) Prepare(ctx context.Context) error {
	if err := s.repo.EnsureTable(ctx); err != nil {
		return s.fail(ctx, err, "ensure_users_table", "Failed to initialize database")
	}
	zerolog.Ctx(ctx).Info().Msg("users table is ready")
	return nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, err, "list_users", "Failed to get users")
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, err, "get_user", "Failed to get user")
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, name, email string) (*model.User, error) {
	user, err := s.repo.Create(ctx, name, email)
	if err != nil {
		return nil, s.fail(ctx, err, "create_user", "Failed to add user")
	}

	zerolog.Ctx(ctx).Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, name, email string) (*model.User, error) {
	user, err := s.repo.Update(ctx, id, name, email)
	if err != nil {
		return nil, s.fail(ctx, err, "update_user", "Failed to update user")
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, err, "delete_user", "Failed to delete user")
	}

	zerolog.Ctx(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) Search(ctx context.Context, query string) ([]model.User, error) {
	users, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, s.fail(ctx, err, "search_users", "Failed to search users")
	}
	return users, nil
}

func (s *UserService) Paginate(ctx context.Context, page, limit int) ([]model.User, model.Pagination, error) {
	users, pagination, err := s.repo.Paginate(ctx, page, limit)
	if err != nil {
		return nil, model.Pagination{}, s.fail(ctx, err, "paginate_users", "Failed to get users")
	}
	return users, pagination, nil
}
