package handler

import (
	"io/fs"

	"github.com/letuankiet/usersdesk/internal/server"
	"github.com/letuankiet/usersdesk/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Users   *UserHandler
	Slides  *SlideHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

// NewHandlers builds the handlers. assets holds openapi.html and
// openapi.json.
func NewHandlers(s *server.Server, services *service.Services, assets fs.FS) *Handlers {
	var db Pinger
	if s.DB != nil {
		db = s.DB
	}

	return &Handlers{
		Users:   NewUserHandler(s, services.Users),
		Slides:  NewSlideHandler(s, services.Slides),
		Health:  NewHealthHandler(s, db),
		OpenAPI: NewOpenAPIHandler(s, assets),
	}
}
