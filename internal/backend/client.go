// Package backend implements the HTTP client for the remote workspace service.
//
// The remote service holds the durable copy of every workspace. Fetching a
// file through it also restores workspace state on the remote side when that
// state has not been materialized yet; this layer only forwards the request.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/scrivenhq/scriven/internal/apperr"
)

// Client calls the remote workspace backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. A non-positive
// timeout leaves the transport default in place.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type contentRequest struct {
	Path string `json:"path"`
}

type contentResponse struct {
	Content string `json:"content"`
}

// FetchContent requests file content for (workspaceID, path) using the
// caller's bearer token. Network-level failures map to apperr.ErrUnavailable;
// non-2xx responses map to *apperr.UpstreamError carrying the remote status.
func (c *Client) FetchContent(ctx context.Context, workspaceID, path, token string) (string, error) {
	body, err := json.Marshal(contentRequest{Path: path})
	if err != nil {
		return "", fmt.Errorf("backend: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/workspaces/%s/content", c.baseURL, url.PathEscape(workspaceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("backend: %w: %v", apperr.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return "", &apperr.UpstreamError{Status: resp.StatusCode}
	}

	var out contentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("backend: decode response: %w", err)
	}
	return out.Content, nil
}
