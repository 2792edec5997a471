package view

import (
	"strings"

	"github.com/uraita-dev/uraita/frontend/internal/anchor"
	"github.com/uraita-dev/uraita/shared/domain"
	internal_errors "github.com/uraita-dev/uraita/shared/errors"
	"github.com/uraita-dev/uraita/shared/logger"
)

// Client is the slice of the backend API the thread view needs.
// *apiclient.APIClient satisfies it.
type Client interface {
	GetThread(id domain.ThreadId) (domain.Thread, error)
	ListPosts(id domain.ThreadId) ([]domain.Post, error)
	CreatePost(id domain.ThreadId, name, content string) (domain.PostId, error)
}

type Phase int

const (
	Loading Phase = iota
	Ready
	NotFound
)

// Compose holds the reply form state. Name survives submissions, Content is
// cleared only after a successful one.
type Compose struct {
	Name    string
	Content string
}

// Scroll says where the viewport should land after the current transition.
type Scroll struct {
	Bottom    bool
	PostIndex int // 1-based display index, 0 means none
}

// ThreadView drives one thread page: load, refresh, submit. It starts in
// Loading and settles in Ready or NotFound; once Ready it never regresses
// to Loading, failed refreshes keep the stale post list.
type ThreadView struct {
	client Client

	ThreadId domain.ThreadId
	Phase    Phase
	Thread   domain.Thread
	Posts    []domain.Post
	Compose  Compose
	Scroll   Scroll
	Err      string

	submitting bool
}

func NewThreadView(client Client, id domain.ThreadId, name string) *ThreadView {
	return &ThreadView{
		client:   client,
		ThreadId: id,
		Phase:    Loading,
		Compose:  Compose{Name: name},
	}
}

// Load performs the initial fetch. Thread metadata and the post list both
// arrive before the view leaves Loading. A missing or unreachable thread
// lands in NotFound; a post fetch failure degrades to an empty Ready view.
func (v *ThreadView) Load() {
	thread, err := v.client.GetThread(v.ThreadId)
	if err != nil {
		if statusErr, ok := err.(*internal_errors.ErrorWithStatusCode); ok && statusErr.StatusCode == 404 {
			v.Phase = NotFound
			return
		}
		logger.Log.Error("thread fetch failed", "thread", v.ThreadId, "error", err)
		v.Phase = NotFound
		return
	}
	v.Thread = thread

	posts, err := v.client.ListPosts(v.ThreadId)
	if err != nil {
		logger.Log.Error("post fetch failed", "thread", v.ThreadId, "error", err)
		v.Err = "Could not load posts. Try reloading the page."
		posts = nil
	}
	v.Posts = posts
	v.Phase = Ready
}

// Refresh re-fetches the post list without leaving Ready. On failure the
// previously loaded posts stay on screen.
func (v *ThreadView) Refresh() {
	if v.Phase != Ready {
		return
	}
	posts, err := v.client.ListPosts(v.ThreadId)
	if err != nil {
		logger.Log.Error("refresh failed", "thread", v.ThreadId, "error", err)
		v.Err = "Could not refresh posts."
		return
	}
	v.Posts = posts
	v.Scroll = Scroll{Bottom: true}
}

// Submit sends the compose form. A body that is empty after trimming is
// refused locally. On success the content field is cleared, the name is
// kept, and the view refreshes with the scroll pinned to the bottom. On
// failure the form stays populated so the user can retry.
func (v *ThreadView) Submit() {
	if v.submitting {
		return
	}
	if strings.TrimSpace(v.Compose.Content) == "" {
		v.Err = "Post content is empty"
		return
	}

	v.submitting = true
	defer func() { v.submitting = false }()

	_, err := v.client.CreatePost(v.ThreadId, v.Compose.Name, v.Compose.Content)
	if err != nil {
		logger.Log.Error("post submit failed", "thread", v.ThreadId, "error", err)
		v.Err = "Could not submit post. Your text is preserved, try again."
		return
	}
	v.Compose.Content = ""
	v.Refresh()
}

// PostAt resolves a 1-based display index against the current post list.
func (v *ThreadView) PostAt(index int) (domain.Post, bool) {
	return anchor.Resolve(index, v.Posts)
}

// JumpTo points the viewport at the referenced post. Unresolvable indexes
// are ignored.
func (v *ThreadView) JumpTo(index int) {
	if _, ok := v.PostAt(index); !ok {
		return
	}
	v.Scroll = Scroll{PostIndex: index}
}
