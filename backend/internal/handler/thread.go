package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uraita-dev/uraita/shared/api"
	"github.com/uraita-dev/uraita/shared/domain"
	"github.com/uraita-dev/uraita/shared/utils"
)

// ListThreads returns all live threads, newest first. The service runs the
// expiry cleanup pass before reading.
func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadsResponse{Threads: threads})
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId, err := h.thread.Create(domain.ThreadCreationData{Title: body.Title})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeBody(w, api.CreatedResponse{Id: threadId})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadResponse{Thread: thread})
}
