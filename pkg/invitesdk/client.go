package invitesdk

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
)

// Client talks to the invitation service. The zero Token makes every request
// unauthenticated; use WithToken for the inviter-side endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is the CRM session bearer token, if any.
	Token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that authenticates with the given
// bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	headers map[string]string,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("invitesdk: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("invitesdk: failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invitesdk: request failed: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes the response into target, or returns an *APIError when
// the status is not the expected one.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("invitesdk: failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, body)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("invitesdk: failed to decode response: %w", err)
	}
	return nil
}

func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, body)
	}
	return nil
}

// CreateInvitation issues an invitation. Requires a PROPIETARIO or
// ADMINISTRADOR bearer token.
func (c *Client) CreateInvitation(
	ctx context.Context,
	req CreateInvitationRequest,
) (*CreateInvitationResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/invitations", req, nil)
	if err != nil {
		return nil, err
	}

	var out CreateInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns the organization's invitations, newest first.
// An empty status means no filter.
func (c *Client) ListInvitations(ctx context.Context, status string) (*ListInvitationsResponse, error) {
	path := "/v1/invitations"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListInvitationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvitation looks an invitation up by its redemption token. Public.
func (c *Client) GetInvitation(ctx context.Context, token string) (*InvitationDetails, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/invitations/"+url.PathEscape(token), nil, nil)
	if err != nil {
		return nil, err
	}

	var out InvitationDetails
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation redeems an invitation, creating the user account. Public.
func (c *Client) AcceptInvitation(
	ctx context.Context,
	req AcceptInvitationRequest,
) (*AcceptInvitationResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/invitations/accept", req, nil)
	if err != nil {
		return nil, err
	}

	var out AcceptInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelInvitation cancels a pending invitation. Only the original inviter
// may cancel.
func (c *Client) CancelInvitation(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/v1/invitations/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Bootstrap provisions the first organization and owner on an empty
// deployment, authorized by the pre-configured bootstrap token.
func (c *Client) Bootstrap(
	ctx context.Context,
	bootstrapToken string,
	req BootstrapRequest,
) (*BootstrapResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/bootstrap", req, map[string]string{
		"X-Bootstrap-Token": bootstrapToken,
	})
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserInfo returns the authenticated user's profile.
func (c *Client) UserInfo(ctx context.Context) (*UserInfoResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/userinfo", nil, nil)
	if err != nil {
		return nil, err
	}

	var out UserInfoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez reports whether the service process is up.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz reports whether the service and its dependencies are ready.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
