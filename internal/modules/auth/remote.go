package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RemoteAuthenticator validates a credential pair against a hosted auth
// service. A nil error means the pair was accepted.
type RemoteAuthenticator interface {
	SignIn(ctx context.Context, email, password string) error
}

type remoteAuthClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteAuthClient creates a client for a GoTrue-style password sign-in
// endpoint.
func NewRemoteAuthClient(baseURL, apiKey string) RemoteAuthenticator {
	return &remoteAuthClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *remoteAuthClient) SignIn(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/token?grant_type=password", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return ErrBadCredentials
	default:
		return fmt.Errorf("auth service error: status %d", resp.StatusCode)
	}
}
