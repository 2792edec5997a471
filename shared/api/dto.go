package api

import "github.com/uraita-dev/uraita/shared/domain"

// Request DTOs shared by backend and frontend handlers

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
}

type CreatePostRequest struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type ThreadResponse struct {
	domain.Thread
}

type ThreadsResponse struct {
	Threads []domain.Thread `json:"threads"`
}

type PostsResponse struct {
	Posts []domain.Post `json:"posts"`
}

type CreatedResponse struct {
	Id int64 `json:"id"`
}
