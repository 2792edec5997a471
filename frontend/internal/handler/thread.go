package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/uraita-dev/uraita/frontend/internal/view"
	"github.com/uraita-dev/uraita/shared/domain"
)

type threadPageData struct {
	Thread        domain.Thread
	Posts         []PostView
	Compose       view.Compose
	Error         template.HTML
	ContentMaxLen int
}

func parseThreadId(r *http.Request) (domain.ThreadId, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "thread"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid thread id: %w", err)
	}
	return id, nil
}

// ThreadGetHandler renders a thread page. Expired and never-existing threads
// are indistinguishable and both land on the not-found page.
func (h *Handler) ThreadGetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseThreadId(r)
	if err != nil {
		h.NotFoundHandler(w, r)
		return
	}

	v := view.NewThreadView(h.Client, id, readName(r))
	v.Load()
	if v.Phase == view.NotFound {
		h.NotFoundHandler(w, r)
		return
	}

	data := threadPageData{
		Thread:        v.Thread,
		Posts:         renderPosts(v.Posts),
		Compose:       v.Compose,
		Error:         parseErrorFromQuery(r),
		ContentMaxLen: h.Public.ContentMaxLen,
	}
	if data.Error == "" && v.Err != "" {
		data.Error = template.HTML(template.HTMLEscapeString(v.Err))
	}

	h.renderTemplate(w, "thread.html", data)
}

// ThreadPostHandler submits a reply. Success redirects back to the thread
// anchored at the bottom; failure re-renders the page with the compose form
// still populated.
func (h *Handler) ThreadPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseThreadId(r)
	if err != nil {
		h.NotFoundHandler(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, fmt.Sprintf("/%d", id), "Invalid form data.")
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	content := r.FormValue("content")

	if strings.TrimSpace(content) == "" {
		redirectWithError(w, r, fmt.Sprintf("/%d", id), "Post content is empty.")
		return
	}

	v := view.NewThreadView(h.Client, id, name)
	v.Compose.Content = content
	v.Submit()

	if v.Compose.Content == "" {
		// Content cleared means the post was accepted.
		saveName(w, name)
		http.Redirect(w, r, fmt.Sprintf("/%d#bottom", id), http.StatusSeeOther)
		return
	}

	// Submission failed. Load the page state and keep the draft on screen.
	errMsg := v.Err
	v.Load()
	if v.Phase == view.NotFound {
		// The thread expired under the user.
		h.NotFoundHandler(w, r)
		return
	}
	v.Compose = view.Compose{Name: name, Content: content}

	data := threadPageData{
		Thread:        v.Thread,
		Posts:         renderPosts(v.Posts),
		Compose:       v.Compose,
		Error:         template.HTML(template.HTMLEscapeString(errMsg)),
		ContentMaxLen: h.Public.ContentMaxLen,
	}
	h.renderTemplate(w, "thread.html", data)
}

// ThreadRefreshHandler is a manual reload alias: it lands back on the thread
// anchored at the bottom, picking up any posts that arrived meanwhile.
func (h *Handler) ThreadRefreshHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseThreadId(r)
	if err != nil {
		h.NotFoundHandler(w, r)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/%d#bottom", id), http.StatusSeeOther)
}

// NotFoundHandler renders the dedicated not-found page with a link back to
// the listing.
func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	data := struct{ Error template.HTML }{}
	h.renderTemplateStatus(w, "notfound.html", data, http.StatusNotFound)
}
