package service

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/uraita-dev/uraita/backend/internal/service/utils"
	"github.com/uraita-dev/uraita/shared/domain"
	internal_errors "github.com/uraita-dev/uraita/shared/errors"
)

// PostStorage defines the database operations the post service needs.
type PostStorage interface {
	CreatePost(creationData domain.PostCreationData) (domain.PostId, error)
	GetPosts(threadId domain.ThreadId) ([]domain.Post, error)
}

type Post struct {
	storage       PostStorage
	contentMaxLen int
}

func NewPost(storage PostStorage, contentMaxLen int) *Post {
	return &Post{storage: storage, contentMaxLen: contentMaxLen}
}

// Create normalizes the content before persisting it and substitutes the
// placeholder name when the submitted one is blank. Content that is empty
// after normalization is rejected and nothing is written.
func (s *Post) Create(creationData domain.PostCreationData) (domain.PostId, error) {
	content := utils.Normalize(creationData.Content)
	if content == "" {
		return -1, &internal_errors.ErrorWithStatusCode{
			Message:    "Post content is empty",
			StatusCode: http.StatusBadRequest,
		}
	}
	if utf8.RuneCountInString(content) > s.contentMaxLen {
		return -1, &internal_errors.ErrorWithStatusCode{
			Message:    "Post content is too long",
			StatusCode: http.StatusBadRequest,
		}
	}

	name := strings.TrimSpace(creationData.Name)
	if name == "" {
		name = domain.DefaultPostName
	}

	return s.storage.CreatePost(domain.PostCreationData{
		ThreadId: creationData.ThreadId,
		Name:     name,
		Content:  content,
	})
}

func (s *Post) List(threadId domain.ThreadId) ([]domain.Post, error) {
	return s.storage.GetPosts(threadId)
}
