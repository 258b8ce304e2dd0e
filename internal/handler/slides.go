package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/letuankiet/usersdesk/internal/model"
	"github.com/letuankiet/usersdesk/internal/server"
	"github.com/letuankiet/usersdesk/internal/service"
)

type SlideHandler struct {
	Handler
	slides *service.SlideService
}

func NewSlideHandler(s *server.Server, slides *service.SlideService) *SlideHandler {
	return &SlideHandler{
		Handler: NewHandler(s),
		slides:  slides,
	}
}

// ListSlides serves GET /api/nature-slides as a bare array.
func (h *SlideHandler) ListSlides() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK, newRequest[EmptyRequest])
}

// ResetSlides serves POST /api/reset-nature-slides. There is no
// confirmation step.
func (h *SlideHandler) ResetSlides() echo.HandlerFunc {
	return Handle(h.Handler, h.reset, http.StatusOK, newRequest[EmptyRequest])
}

func (h *SlideHandler) list(c echo.Context, _ *EmptyRequest) ([]model.NatureSlide, error) {
	return h.slides.List(c.Request().Context())
}

func (h *SlideHandler) reset(c echo.Context, _ *EmptyRequest) (*MessageResponse, error) {
	if err := h.slides.Reset(c.Request().Context()); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Nature slides reset successfully"}, nil
}
