// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// input from the handlers, calls the repositories and converts their
// failures into the application's error taxonomy (errs.HTTPError).
package service

import (
	"github.com/letuankiet/usersdesk/internal/repository"
	"github.com/letuankiet/usersdesk/internal/server"
)

type Services struct {
	Users  *UserService
	Slides *SlideService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:  NewUserService(repos.Users),
		Slides: NewSlideService(repos.Slides),
	}, nil
}
