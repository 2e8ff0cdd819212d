package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/myhit051/hatyai-restart-sub000/internal/config"
)

var (
	ErrNotConfigured = errors.New("identity provider not configured")
	ErrForbidden     = errors.New("identity provider rejected the metadata update")
)

// Client talks to the hosted identity provider's REST surface. Accounts and
// sessions live there; this backend only pushes metadata updates back.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.IdentityBaseURL,
		apiKey:  cfg.IdentityAPIKey,
		http:    &http.Client{Timeout: cfg.IdentityTimeout},
	}
}

func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// UpdateUserMetadata writes the metadata bag of the session owner. The
// provider only lets a session edit its own account, so the caller's bearer
// token is forwarded as-is; acting on another account comes back as
// ErrForbidden and the caller falls back to a local-only write.
func (c *Client) UpdateUserMetadata(ctx context.Context, accessToken string, metadata map[string]interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(map[string]interface{}{"data": metadata})
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/auth/v1/user", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrForbidden
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("identity provider error (status %d): %s", resp.StatusCode, string(b))
	}
	return nil
}
