package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uraita-dev/uraita/shared/api"
	"github.com/uraita-dev/uraita/shared/domain"
	"github.com/uraita-dev/uraita/shared/utils"
)

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := h.post.List(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.PostsResponse{Posts: posts})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	postId, err := h.post.Create(domain.PostCreationData{
		ThreadId: threadId,
		Name:     body.Name,
		Content:  body.Content,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeBody(w, api.CreatedResponse{Id: postId})
}
