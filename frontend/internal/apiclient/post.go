package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/uraita-dev/uraita/shared/api"
	"github.com/uraita-dev/uraita/shared/domain"
	"github.com/uraita-dev/uraita/shared/utils"
)

// ListPosts fetches a thread's posts ordered by created_at ascending; the
// position in the returned slice defines each post's display index.
func (c *APIClient) ListPosts(threadId domain.ThreadId) ([]domain.Post, error) {
	resp, err := c.do("GET", fmt.Sprintf("/v1/threads/%d/posts", threadId), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse("list posts", resp)
	}

	var body api.PostsResponse
	if err := utils.Decode(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("cannot decode posts response: %w", err)
	}
	return body.Posts, nil
}

// CreatePost appends a post. Content is normalized again by the backend;
// callers should still refuse to submit whitespace-only bodies.
func (c *APIClient) CreatePost(threadId domain.ThreadId, name, content string) (domain.PostId, error) {
	payload, err := json.Marshal(api.CreatePostRequest{Name: name, Content: content})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal post data: %w", err)
	}

	resp, err := c.do("POST", fmt.Sprintf("/v1/threads/%d/posts", threadId), bytes.NewBuffer(payload))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, errorFromResponse("create post", resp)
	}

	var body api.CreatedResponse
	if err := utils.Decode(resp.Body, &body); err != nil {
		return 0, fmt.Errorf("cannot decode create post response: %w", err)
	}
	return body.Id, nil
}
