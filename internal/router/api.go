package router

import (
	"github.com/labstack/echo/v4"

	"github.com/letuankiet/usersdesk/internal/handler"
)

func registerUserRoutes(api *echo.Group, h *handler.Handlers) {
	users := api.Group("/users")

	users.GET("", h.Users.ListUsers())
	users.POST("", h.Users.CreateUser())
	users.GET("/search", h.Users.SearchUsers())
	users.GET("/paginated", h.Users.PaginateUsers())
	users.GET("/:id", h.Users.GetUser())
	users.PUT("/:id", h.Users.UpdateUser())
	users.DELETE("/:id", h.Users.DeleteUser())
}

func registerSlideRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("/nature-slides", h.Slides.ListSlides())
	// Destructive and unauthenticated.
	api.POST("/reset-nature-slides", h.Slides.ResetSlides())
}
