package view

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uraita-dev/uraita/shared/domain"
	internal_errors "github.com/uraita-dev/uraita/shared/errors"
)

type MockClient struct {
	GetThreadFunc  func(id domain.ThreadId) (domain.Thread, error)
	ListPostsFunc  func(id domain.ThreadId) ([]domain.Post, error)
	CreatePostFunc func(id domain.ThreadId, name, content string) (domain.PostId, error)

	CreatePostCalls int
}

func (m *MockClient) GetThread(id domain.ThreadId) (domain.Thread, error) {
	return m.GetThreadFunc(id)
}

func (m *MockClient) ListPosts(id domain.ThreadId) ([]domain.Post, error) {
	return m.ListPostsFunc(id)
}

func (m *MockClient) CreatePost(id domain.ThreadId, name, content string) (domain.PostId, error) {
	m.CreatePostCalls++
	return m.CreatePostFunc(id, name, content)
}

func makePosts(contents ...string) []domain.Post {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := make([]domain.Post, len(contents))
	for i, c := range contents {
		posts[i] = domain.Post{
			Id:        domain.PostId(i + 1),
			ThreadId:  1,
			Name:      domain.DefaultPostName,
			Content:   c,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return posts
}

func happyClient(posts *[]domain.Post) *MockClient {
	return &MockClient{
		GetThreadFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{Id: id, Title: "t"}, nil
		},
		ListPostsFunc: func(id domain.ThreadId) ([]domain.Post, error) {
			return *posts, nil
		},
		CreatePostFunc: func(id domain.ThreadId, name, content string) (domain.PostId, error) {
			*posts = append(*posts, domain.Post{
				Id:       domain.PostId(len(*posts) + 1),
				ThreadId: id,
				Name:     name,
				Content:  content,
			})
			return domain.PostId(len(*posts)), nil
		},
	}
}

func TestLoad_Ready(t *testing.T) {
	posts := makePosts("first", "second")
	v := NewThreadView(happyClient(&posts), 1, "")

	require.Equal(t, Loading, v.Phase)
	v.Load()
	require.Equal(t, Ready, v.Phase)
	assert.Len(t, v.Posts, 2)
	assert.Equal(t, "t", v.Thread.Title)
}

func TestLoad_NotFound(t *testing.T) {
	client := &MockClient{
		GetThreadFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "thread 7 not found",
				StatusCode: http.StatusNotFound,
			}
		},
	}
	v := NewThreadView(client, 7, "")
	v.Load()
	assert.Equal(t, NotFound, v.Phase)
}

func TestLoad_BackendDown(t *testing.T) {
	client := &MockClient{
		GetThreadFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{}, errors.New("connection refused")
		},
	}
	v := NewThreadView(client, 1, "")
	v.Load()
	assert.Equal(t, NotFound, v.Phase)
}

func TestLoad_PostFetchFailureDegrades(t *testing.T) {
	client := &MockClient{
		GetThreadFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{Id: id, Title: "t"}, nil
		},
		ListPostsFunc: func(id domain.ThreadId) ([]domain.Post, error) {
			return nil, errors.New("boom")
		},
	}
	v := NewThreadView(client, 1, "")
	v.Load()
	// The page still renders, just without posts.
	assert.Equal(t, Ready, v.Phase)
	assert.Empty(t, v.Posts)
	assert.NotEmpty(t, v.Err)
}

func TestRefresh_FailureKeepsStalePosts(t *testing.T) {
	posts := makePosts("first")
	client := happyClient(&posts)
	v := NewThreadView(client, 1, "")
	v.Load()
	require.Len(t, v.Posts, 1)

	client.ListPostsFunc = func(id domain.ThreadId) ([]domain.Post, error) {
		return nil, errors.New("boom")
	}
	v.Refresh()
	assert.Equal(t, Ready, v.Phase)
	assert.Len(t, v.Posts, 1)
	assert.NotEmpty(t, v.Err)
}

func TestSubmit_AppendsAndClearsContent(t *testing.T) {
	posts := makePosts("first", "second", "third")
	v := NewThreadView(happyClient(&posts), 1, "alice")
	v.Load()

	v.Compose.Content = ">>2 thanks"
	v.Submit()

	require.Len(t, v.Posts, 4)
	assert.Equal(t, ">>2 thanks", v.Posts[3].Content)
	assert.Equal(t, "", v.Compose.Content)
	assert.Equal(t, "alice", v.Compose.Name)
	assert.True(t, v.Scroll.Bottom)

	// The new post's reference resolves to the second post by display index.
	target, ok := v.PostAt(2)
	require.True(t, ok)
	assert.Equal(t, "second", target.Content)
}

func TestSubmit_EmptyContentRefused(t *testing.T) {
	posts := makePosts("first")
	client := happyClient(&posts)
	v := NewThreadView(client, 1, "")
	v.Load()

	v.Compose.Content = "  \n\n  "
	v.Submit()

	assert.Zero(t, client.CreatePostCalls)
	assert.Len(t, v.Posts, 1)
	assert.NotEmpty(t, v.Err)
}

func TestSubmit_FailureKeepsCompose(t *testing.T) {
	posts := makePosts("first")
	client := happyClient(&posts)
	client.CreatePostFunc = func(id domain.ThreadId, name, content string) (domain.PostId, error) {
		return 0, errors.New("backend down")
	}
	v := NewThreadView(client, 1, "bob")
	v.Load()

	v.Compose.Content = "my reply"
	v.Submit()

	assert.Equal(t, "my reply", v.Compose.Content)
	assert.Equal(t, "bob", v.Compose.Name)
	assert.NotEmpty(t, v.Err)
	assert.Len(t, v.Posts, 1)
}

func TestSubmit_DuplicateGuard(t *testing.T) {
	posts := makePosts("first")
	client := happyClient(&posts)
	v := NewThreadView(client, 1, "")
	v.Load()

	// A re-entrant submit while one is in flight must be dropped.
	client.CreatePostFunc = func(id domain.ThreadId, name, content string) (domain.PostId, error) {
		v.Submit()
		posts = append(posts, domain.Post{Id: 2, ThreadId: id, Name: name, Content: content})
		return 2, nil
	}
	v.Compose.Content = "once"
	v.Submit()

	assert.Equal(t, 1, client.CreatePostCalls)
	assert.Len(t, v.Posts, 2)
}

func TestJumpTo(t *testing.T) {
	posts := makePosts("first", "second")
	v := NewThreadView(happyClient(&posts), 1, "")
	v.Load()

	v.JumpTo(2)
	assert.Equal(t, 2, v.Scroll.PostIndex)

	// Dead reference: no scroll change.
	v.JumpTo(9)
	assert.Equal(t, 2, v.Scroll.PostIndex)
}
