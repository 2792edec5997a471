package apiclient

import (
	"fmt"
	"io"
	"net/http"
)

// APIClient handles all communication with the backend API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a new client for interacting with the backend.
func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
	}
}

// do is the single, unified helper for making API requests.
func (c *APIClient) do(method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// errorFromResponse turns a non-2xx response into an error carrying the backend's message.
func errorFromResponse(action string, resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("failed to %s: %s", action, string(bodyBytes))
}
