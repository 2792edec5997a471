package handler

import (
	"html/template"
	"net/http"

	"github.com/uraita-dev/uraita/shared/config"
	"github.com/uraita-dev/uraita/shared/domain"
)

// BoardClient is the backend API surface the page handlers use.
// *apiclient.APIClient satisfies it.
type BoardClient interface {
	ListThreads() ([]domain.Thread, error)
	CreateThread(title string) (domain.ThreadId, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	ListPosts(id domain.ThreadId) ([]domain.Post, error)
	CreatePost(id domain.ThreadId, name, content string) (domain.PostId, error)
}

type Handler struct {
	Templates map[string]*template.Template
	Public    config.Public
	Client    BoardClient
}

func New(templates map[string]*template.Template, publicCfg config.Public, client BoardClient) *Handler {
	return &Handler{
		Templates: templates,
		Public:    publicCfg,
		Client:    client,
	}
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "frontend/static/favicon.ico")
}
