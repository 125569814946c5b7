package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

// authTimeout bounds the login request; the UI blocks on it
const authTimeout = 30 * time.Second

// AuthResult carries the credentials produced by a successful login
type AuthResult struct {
	UserID      string
	AccessToken string
}

// Authenticate issues a credential-based login against the server using
// the session's username and password. It never retries and never
// persists the result; the caller is responsible for feeding the
// returned pair back into the session store. Failures, including an
// unreachable server, surface as domain.ErrAuthFailed.
func (c *Client) Authenticate(ctx context.Context) (*AuthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	reqBody, err := json.Marshal(map[string]string{
		"Username": c.session.Username,
		"Pw":       c.session.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/Users/AuthenticateByName", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Emby-Authorization", buildAuthHeader("")) // No token yet

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("authentication request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("authentication rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrAuthFailed, resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.Unmarshal(respBody, &authResp); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}

	c.logger.Info("authenticated", "user", authResp.User.Name)

	return &AuthResult{
		UserID:      authResp.User.ID,
		AccessToken: authResp.AccessToken,
	}, nil
}
