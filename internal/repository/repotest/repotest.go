// Package repotest provides in-memory repositories for tests of the layers
// above the database.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/letuankiet/usersdesk/internal/model"
	"github.com/letuankiet/usersdesk/internal/repository"
)

// Users is an in-memory repository.UserRepository. Setting Err makes every
// call fail with it.
type Users struct {
	mu     sync.Mutex
	rows   map[int64]model.User
	nextID int64
	now    func() time.Time

	Err   error
	Calls int
}

// NewUsers returns an empty Users.
func NewUsers() *Users {
	return &Users{
		rows:   map[int64]model.User{},
		nextID: 1,
		now:    time.Now,
	}
}

var _ repository.UserRepository = (*Users)(nil)

func (u *Users) enter() error {
	u.mu.Lock()
	u.Calls++
	return u.Err
}

func (u *Users) sorted(keep func(model.User) bool) []model.User {
	out := []model.User{}
	for _, row := range u.rows {
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (u *Users) EnsureTable(context.Context) error {
	err := u.enter()
	defer u.mu.Unlock()
	return err
}

func (u *Users) List(context.Context) ([]model.User, error) {
	err := u.enter()
	defer u.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return u.sorted(nil), nil
}

func (u *Users) GetByID(_ context.Context, id int64) (*model.User, error) {
	err := u.enter()
	defer u.mu.Unlock()
	if err != nil {
		return nil, err
	}
	row, ok := u.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (u *Users) Create(_ context.Context, name, email string) (*model.User, error) {
	err := u.enter()
	defer u.mu.Unlock()
	if err != nil {
		return nil, err
	}
	row := model.User{ID: u.nextID, Name: name, Email: email, CreatedAt: u.now()}
	u.rows[row.ID] = row
	u.nextID++
	return &row, nil
}

func (u *Users) Update(_ context.Context, id int64, name, email string) (*model.User, error) {
	err := u.enter()
	defer u.mu.Unlock()
	if err != nil {
		return nil, err
	}
	row, ok := u.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	row.Name, row.Email = name, email
	u.rows[id] = row
	return &row, nil
}

func (u *Users) Delete(_ context.Context, id int64) error {
	err := u.enter()
	defer u.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := u.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(u.rows, id)
	return nil
}

func (u *Users) Search(_ context.Context, query string) ([]model.User, error) {
	err := u.enter()
	defer u.mu.Unlock()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	return u.sorted(func(row model.User) bool {
		return strings.Contains(strings.ToLower(row.Name), q) ||
			strings.Contains(strings.ToLower(row.Email), q)
	}), nil
}

func (u *Users) Paginate(_ context.Context, page, limit int) ([]model.User, model.Pagination, error) {
	err := u.enter()
	defer u.mu.Unlock()
	if err != nil {
		return nil, model.Pagination{}, err
	}
	all := u.sorted(nil)

	start := min(model.Offset(page, limit), len(all))
	end := min(start+limit, len(all))

	return append([]model.User{}, all[start:end]...), model.NewPagination(page, limit, int64(len(all))), nil
}

// Slides is an in-memory repository.SlideRepository.
type Slides struct {
	mu     sync.Mutex
	rows   []model.NatureSlide
	nextID int64

	Err   error
	Calls int
}

// NewSlides returns an empty Slides.
func NewSlides() *Slides {
	return &Slides{nextID: 1}
}

var _ repository.SlideRepository = (*Slides)(nil)

func (s *Slides) enter() error {
	s.mu.Lock()
	s.Calls++
	return s.Err
}

func (s *Slides) List(context.Context) ([]model.NatureSlide, error) {
	err := s.enter()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return append([]model.NatureSlide{}, s.rows...), nil
}

func (s *Slides) InitializeIfEmpty(context.Context) (int, error) {
	err := s.enter()
	defer s.mu.Unlock()
	if err != nil {
		return 0, err
	}
	if len(s.rows) > 0 {
		return 0, nil
	}
	s.insert(repository.InitialSlides)
	return len(repository.InitialSlides), nil
}

func (s *Slides) Reset(context.Context) error {
	err := s.enter()
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.rows = nil
	s.nextID = 1
	s.insert(repository.ResetSlides)
	return nil
}

func (s *Slides) insert(seeds []model.SlideSeed) {
	for _, seed := range seeds {
		s.rows = append(s.rows, model.NatureSlide{
			ID:        s.nextID,
			Title:     seed.Title,
			Src:       seed.Src,
			CreatedAt: time.Now(),
		})
		s.nextID++
	}
}
