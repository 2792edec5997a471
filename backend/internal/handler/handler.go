package handler

import (
	"encoding/json"
	"net/http"

	"github.com/uraita-dev/uraita/shared/domain"
	"github.com/uraita-dev/uraita/shared/logger"
)

// ThreadService is the slice of the thread service the handlers need.
type ThreadService interface {
	Create(creationData domain.ThreadCreationData) (domain.ThreadId, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	List() ([]domain.Thread, error)
}

// PostService is the slice of the post service the handlers need.
type PostService interface {
	Create(creationData domain.PostCreationData) (domain.PostId, error)
	List(threadId domain.ThreadId) ([]domain.Post, error)
}

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping() error
}

type Handler struct {
	thread ThreadService
	post   PostService
	db     Pinger
}

func New(thread ThreadService, post PostService, db Pinger) *Handler {
	return &Handler{thread: thread, post: post, db: db}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	writeBody(w, v)
}

// writeBody encodes v without touching headers; used after WriteHeader.
func writeBody(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
