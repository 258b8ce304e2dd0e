// Package router builds the echo instance: the global middleware chain, the
// error handler and every route.
package router

import (
	"io/fs"

	"github.com/labstack/echo/v4"

	"github.com/letuankiet/usersdesk/internal/handler"
	"github.com/letuankiet/usersdesk/internal/middleware"
	"github.com/letuankiet/usersdesk/internal/server"
)

// NewRouter wires middleware and routes. assets is served under /static.
func NewRouter(s *server.Server, h *handler.Handlers, assets fs.FS) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// RequestID first so every later middleware can correlate, then Recover
	// so a panic anywhere below still ends in the error envelope. The
	// transaction must exist before tracing and the logger read it.
	r.Use(
		middleware.RequestID(),
		middlewares.Global.Recover(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
	)

	registerSystemRoutes(r, h, assets)

	api := r.Group("/api")
	registerUserRoutes(api, h)
	registerSlideRoutes(api, h)

	return r
}
