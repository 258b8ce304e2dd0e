package repository

import (
	"github.com/letuankiet/usersdesk/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users  UserRepository
	Slides SlideRepository
}

// NewRepositories builds every repository on the shared pool of s.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on db.
func New(db Querier) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(db),
		Slides: NewSlideRepository(db),
	}
}
