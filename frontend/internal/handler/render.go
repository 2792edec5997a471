package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/uraita-dev/uraita/frontend/internal/anchor"
	"github.com/uraita-dev/uraita/shared/domain"
	"github.com/uraita-dev/uraita/shared/logger"
)

// PostView pairs a post with its 1-based display index and sanitized HTML
// body. The index is positional and recomputed on every render.
type PostView struct {
	domain.Post
	Index int
	HTML  template.HTML
}

func renderPosts(posts []domain.Post) []PostView {
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = PostView{
			Post:  p,
			Index: i + 1,
			HTML:  anchor.RenderHTML(p.Content, len(posts)),
		}
	}
	return views
}

func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data any) {
	h.renderTemplateStatus(w, name, data, http.StatusOK)
}

func (h *Handler) renderTemplateStatus(w http.ResponseWriter, name string, data any, status int) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
