package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/letuankiet/usersdesk/internal/model"
)

// UserRepository stores users.
type UserRepository interface {
	EnsureTable(ctx context.Context) error
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, name, email string) (*model.User, error)
	Update(ctx context.Context, id int64, name, email string) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]model.User, error)
	Paginate(ctx context.Context, page, limit int) ([]model.User, model.Pagination, error)
}

const (
	createUsersTable = `CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	createUsersOrderIndex = `CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at DESC, id DESC)`
)

// Newest first; id breaks ties between rows inserted in the same instant.
const userColumns = `id, name, email, created_at`
const userOrder = ` ORDER BY created_at DESC, id DESC`

type userRepository struct {
	db Querier
}

// NewUserRepository returns a UserRepository backed by db.
func NewUserRepository(db Querier) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]model.User, error) {
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// EnsureTable creates the users table and its listing index when missing.
// Both statements are idempotent.
func (r *userRepository) EnsureTable(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createUsersTable); err != nil {
		return errors.Wrap(err, "create users table")
	}
	if _, err := r.db.Exec(ctx, createUsersOrderIndex); err != nil {
		return errors.Wrap(err, "create users index")
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users`+userOrder)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, errors.Wrap(err, "scan users")
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get user %d", id)
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, name, email string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING `+userColumns,
		name, email,
	))
	if err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, name, email string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2 WHERE id = $3 RETURNING `+userColumns,
		name, email, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "update user %d", id)
	}
	return u, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return errors.Wrapf(err, "delete user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) Search(ctx context.Context, query string) ([]model.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE name ILIKE $1 OR email ILIKE $1`+userOrder,
		containsPattern(query),
	)
	if err != nil {
		return nil, errors.Wrap(err, "search users")
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, errors.Wrap(err, "scan users")
	}
	return users, nil
}

// Paginate runs a count and a page query. They are separate statements, so
// a concurrent write can make total disagree with the returned rows.
func (r *userRepository) Paginate(ctx context.Context, page, limit int) ([]model.User, model.Pagination, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, model.Pagination{}, errors.Wrap(err, "count users")
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users`+userOrder+` LIMIT $1 OFFSET $2`,
		limit, model.Offset(page, limit),
	)
	if err != nil {
		return nil, model.Pagination{}, errors.Wrap(err, "paginate users")
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, model.Pagination{}, errors.Wrap(err, "scan users")
	}

	return users, model.NewPagination(page, limit, total), nil
}
