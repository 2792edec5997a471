package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/uraita-dev/uraita/shared/api"
	"github.com/uraita-dev/uraita/shared/domain"
	internal_errors "github.com/uraita-dev/uraita/shared/errors"
	"github.com/uraita-dev/uraita/shared/utils"
)

// ListThreads fetches all live threads, newest first. The backend runs its
// expiry cleanup before answering.
func (c *APIClient) ListThreads() ([]domain.Thread, error) {
	resp, err := c.do("GET", "/v1/threads", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse("list threads", resp)
	}

	var body api.ThreadsResponse
	if err := utils.Decode(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("cannot decode threads response: %w", err)
	}
	return body.Threads, nil
}

func (c *APIClient) CreateThread(title string) (domain.ThreadId, error) {
	payload, err := json.Marshal(api.CreateThreadRequest{Title: title})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal thread data: %w", err)
	}

	resp, err := c.do("POST", "/v1/threads", bytes.NewBuffer(payload))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, errorFromResponse("create thread", resp)
	}

	var body api.CreatedResponse
	if err := utils.Decode(resp.Body, &body); err != nil {
		return 0, fmt.Errorf("cannot decode create thread response: %w", err)
	}
	return body.Id, nil
}

// GetThread fetches one thread's metadata. A missing thread surfaces as an
// ErrorWithStatusCode carrying 404 so callers can render a dedicated empty state.
func (c *APIClient) GetThread(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	resp, err := c.do("GET", fmt.Sprintf("/v1/threads/%d", id), nil)
	if err != nil {
		return thread, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return thread, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("thread %d not found", id),
			StatusCode: http.StatusNotFound,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return thread, errorFromResponse("get thread", resp)
	}

	var body api.ThreadResponse
	if err := utils.Decode(resp.Body, &body); err != nil {
		return thread, fmt.Errorf("cannot decode thread response: %w", err)
	}
	return body.Thread, nil
}
