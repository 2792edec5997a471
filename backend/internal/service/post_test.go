package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uraita-dev/uraita/shared/domain"
	internal_errors "github.com/uraita-dev/uraita/shared/errors"
)

// MockPostStorage mocks the PostStorage interface.
type MockPostStorage struct {
	createPostFunc func(creationData domain.PostCreationData) (domain.PostId, error)
	getPostsFunc   func(threadId domain.ThreadId) ([]domain.Post, error)

	lastCreated *domain.PostCreationData
}

func (m *MockPostStorage) CreatePost(creationData domain.PostCreationData) (domain.PostId, error) {
	m.lastCreated = &creationData
	if m.createPostFunc != nil {
		return m.createPostFunc(creationData)
	}
	return 1, nil
}

func (m *MockPostStorage) GetPosts(threadId domain.ThreadId) ([]domain.Post, error) {
	if m.getPostsFunc != nil {
		return m.getPostsFunc(threadId)
	}
	return []domain.Post{}, nil
}

func TestPostCreate(t *testing.T) {
	t.Run("normalizes content before storing", func(t *testing.T) {
		storage := &MockPostStorage{}
		svc := NewPost(storage, 4000)

		_, err := svc.Create(domain.PostCreationData{
			ThreadId: 1,
			Name:     "anon",
			Content:  "hello\n\n\n\nworld",
		})
		require.NoError(t, err)
		require.NotNil(t, storage.lastCreated)
		assert.Equal(t, "hello\n\nworld", storage.lastCreated.Content)
	})

	t.Run("blank name becomes placeholder", func(t *testing.T) {
		storage := &MockPostStorage{}
		svc := NewPost(storage, 4000)

		_, err := svc.Create(domain.PostCreationData{ThreadId: 1, Name: "   ", Content: "hi"})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPostName, storage.lastCreated.Name)
	})

	t.Run("explicit name is kept", func(t *testing.T) {
		storage := &MockPostStorage{}
		svc := NewPost(storage, 4000)

		_, err := svc.Create(domain.PostCreationData{ThreadId: 1, Name: " poster ", Content: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "poster", storage.lastCreated.Name)
	})

	t.Run("rejects content empty after normalization", func(t *testing.T) {
		storage := &MockPostStorage{}
		svc := NewPost(storage, 4000)

		_, err := svc.Create(domain.PostCreationData{ThreadId: 1, Content: "  \n\n\n  "})
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.StatusCode)
		assert.Nil(t, storage.lastCreated, "nothing must be written for empty content")
	})

	t.Run("rejects overlong content", func(t *testing.T) {
		storage := &MockPostStorage{}
		svc := NewPost(storage, 10)

		_, err := svc.Create(domain.PostCreationData{ThreadId: 1, Content: strings.Repeat("x", 11)})
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.StatusCode)
	})
}

func TestPostList(t *testing.T) {
	storage := &MockPostStorage{
		getPostsFunc: func(threadId domain.ThreadId) ([]domain.Post, error) {
			return []domain.Post{{Id: 10, ThreadId: threadId}, {Id: 11, ThreadId: threadId}}, nil
		},
	}
	svc := NewPost(storage, 4000)

	posts, err := svc.List(5)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.EqualValues(t, 5, posts[0].ThreadId)
}
