package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/uraita-dev/uraita/shared/domain"
	"github.com/uraita-dev/uraita/shared/logger"
)

// BoardGetHandler renders the listing page. A backend failure degrades to an
// empty listing with an error banner instead of a hard error page.
func (h *Handler) BoardGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		Threads     []domain.Thread
		Error       template.HTML
		TitleMaxLen int
	}
	templateData.Error = parseErrorFromQuery(r)
	templateData.TitleMaxLen = h.Public.TitleMaxLen

	threads, err := h.Client.ListThreads()
	if err != nil {
		logger.Log.Error("listing threads via API", "error", err)
		templateData.Error = template.HTML(template.HTMLEscapeString(err.Error()))
	}
	templateData.Threads = threads

	h.renderTemplate(w, "board.html", templateData)
}

// BoardPostHandler creates a thread and jumps straight into it.
func (h *Handler) BoardPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/"

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, targetURL, "Invalid form data.")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		redirectWithError(w, r, targetURL, "Thread title is empty.")
		return
	}

	id, err := h.Client.CreateThread(title)
	if err != nil {
		logger.Log.Error("creating thread via API", "error", err)
		redirectWithError(w, r, targetURL, err.Error())
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/%d", id), http.StatusSeeOther)
}
