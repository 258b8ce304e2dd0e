package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/letuankiet/usersdesk/internal/model"
	"github.com/letuankiet/usersdesk/internal/server"
	"github.com/letuankiet/usersdesk/internal/service"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ListUsers serves GET /api/users.
func (h *UserHandler) ListUsers() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK, newRequest[EmptyRequest])
}

// CreateUser serves POST /api/users.
func (h *UserHandler) CreateUser() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated, newRequest[CreateUserRequest])
}

// GetUser serves GET /api/users/:id.
func (h *UserHandler) GetUser() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK, newRequest[UserIDRequest])
}

// UpdateUser serves PUT /api/users/:id.
func (h *UserHandler) UpdateUser() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK, newRequest[UpdateUserRequest])
}

// DeleteUser serves DELETE /api/users/:id.
func (h *UserHandler) DeleteUser() echo.HandlerFunc {
	return Handle(h.Handler, h.delete, http.StatusOK, newRequest[UserIDRequest])
}

// SearchUsers serves GET /api/users/search?q=.
func (h *UserHandler) SearchUsers() echo.HandlerFunc {
	return Handle(h.Handler, h.search, http.StatusOK, newRequest[SearchUsersRequest])
}

// PaginateUsers serves GET /api/users/paginated?page=&limit=.
func (h *UserHandler) PaginateUsers() echo.HandlerFunc {
	return Handle(h.Handler, h.paginate, http.StatusOK, newRequest[PaginateUsersRequest])
}

func (h *UserHandler) list(c echo.Context, _ *EmptyRequest) (*UserListResponse, error) {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &UserListResponse{Success: true, Data: users, Count: len(users)}, nil
}

func (h *UserHandler) create(c echo.Context, req *CreateUserRequest) (*UserCreatedResponse, error) {
	user, err := h.users.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	return &UserCreatedResponse{Success: true, Data: user, Message: "User created successfully"}, nil
}

func (h *UserHandler) get(c echo.Context, req *UserIDRequest) (*model.User, error) {
	return h.users.Get(c.Request().Context(), req.ID())
}

func (h *UserHandler) update(c echo.Context, req *UpdateUserRequest) (*model.User, error) {
	return h.users.Update(c.Request().Context(), req.ID(), req.Name, req.Email)
}

func (h *UserHandler) delete(c echo.Context, req *UserIDRequest) (*MessageResponse, error) {
	if err := h.users.Delete(c.Request().Context(), req.ID()); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "User deleted successfully"}, nil
}

func (h *UserHandler) search(c echo.Context, req *SearchUsersRequest) (*UserSearchResponse, error) {
	users, err := h.users.Search(c.Request().Context(), req.Query)
	if err != nil {
		return nil, err
	}
	return &UserSearchResponse{Success: true, Data: users, Count: len(users), Query: req.Query}, nil
}

func (h *UserHandler) paginate(c echo.Context, req *PaginateUsersRequest) (*UserPageResponse, error) {
	users, pagination, err := h.users.Paginate(c.Request().Context(), req.Page(), req.Limit())
	if err != nil {
		return nil, err
	}
	return &UserPageResponse{Success: true, Data: users, Pagination: pagination}, nil
}
