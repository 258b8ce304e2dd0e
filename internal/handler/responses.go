package handler

import "github.com/letuankiet/usersdesk/internal/model"

type MessageResponse struct {
	Message string `json:"message"`
}

type UserListResponse struct {
	Success bool         `json:"success"`
	Data    []model.User `json:"data"`
	Count   int          `json:"count"`
}

type UserCreatedResponse struct {
	Success bool        `json:"success"`
	Data    *model.User `json:"data"`
	Message string      `json:"message"`
}

type UserSearchResponse struct {
	Success bool         `json:"success"`
	Data    []model.User `json:"data"`
	Count   int          `json:"count"`
	Query   string       `json:"query"`
}

type UserPageResponse struct {
	Success    bool             `json:"success"`
	Data       []model.User     `json:"data"`
	Pagination model.Pagination `json:"pagination"`
}
