// Package gidentity is a Google Identity Platform client: it validates
// Firebase-issued ID tokens and looks up provider account records through the
// identitytoolkit accounts:lookup endpoint.
package gidentity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const (
	defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"
	scope          = "https://www.googleapis.com/auth/identitytoolkit"
)

// ErrUserNotFound is returned when the provider has no record for a uid.
var ErrUserNotFound = errors.New("gidentity: user record not found")

// Config configures a Client.
type Config struct {
	// ProjectID is the expected token audience.
	ProjectID string

	// CredentialsFile is a service-account JSON key for accounts:lookup. When
	// empty, Application Default Credentials are used.
	CredentialsFile string

	// BaseURL overrides the identitytoolkit endpoint, used by tests.
	BaseURL string

	// HTTPClient overrides the authenticated client, used by tests.
	HTTPClient *http.Client

	// Validator overrides the token validator, used by tests.
	Validator TokenValidator
}

// TokenValidator validates a raw ID token against an audience.
type TokenValidator interface {
	Validate(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// Client is the Google identity provider client.
type Client struct {
	projectID  string
	baseURL    string
	httpClient *http.Client
	validator  TokenValidator
}

var _ Provider = (*Client)(nil)

// NewClient builds an authenticated client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("gidentity: project id is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		var err error
		httpClient, err = newAuthenticatedClient(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
	}

	validator := cfg.Validator
	if validator == nil {
		v, err := idtoken.NewValidator(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to build token validator: %w", err)
		}
		validator = v
	}

	return &Client{
		projectID:  cfg.ProjectID,
		baseURL:    baseURL,
		httpClient: httpClient,
		validator:  validator,
	}, nil
}

func newAuthenticatedClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	if credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credentials: %w", err)
		}
		return oauth2.NewClient(ctx, creds.TokenSource), nil
	}
	client, err := google.DefaultClient(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to build default credentials client: %w", err)
	}
	return client, nil
}

// VerifyIDToken validates a raw bearer token and returns the decoded
// identity. Signature, expiry and audience checks are delegated to the
// validator.
func (c *Client) VerifyIDToken(ctx context.Context, rawToken string) (IDToken, error) {
	payload, err := c.validator.Validate(ctx, rawToken, c.projectID)
	if err != nil {
		return IDToken{}, fmt.Errorf("token validation failed: %w", err)
	}

	token := IDToken{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		token.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		token.EmailVerified = verified
	}
	return token, nil
}

type lookupRequest struct {
	LocalID []string `json:"localId"`
}

type lookupResponse struct {
	Users []struct {
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"emailVerified"`
		DisplayName   string `json:"displayName"`
		Disabled      bool   `json:"disabled"`
	} `json:"users"`
}

// GetUser fetches the provider account record for a uid. Returns
// ErrUserNotFound when no record exists.
func (c *Client) GetUser(ctx context.Context, uid string) (UserRecord, error) {
	u := fmt.Sprintf("%s/accounts:lookup", c.baseURL)

	body, err := json.Marshal(lookupRequest{LocalID: []string{uid}})
	if err != nil {
		return UserRecord{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return UserRecord{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UserRecord{}, fmt.Errorf("failed to call identitytoolkit API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UserRecord{}, fmt.Errorf("identitytoolkit API error: %d", resp.StatusCode)
	}

	var result lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return UserRecord{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Users) == 0 {
		return UserRecord{}, ErrUserNotFound
	}

	u0 := result.Users[0]
	return UserRecord{
		UID:           u0.LocalID,
		Email:         u0.Email,
		EmailVerified: u0.EmailVerified,
		DisplayName:   u0.DisplayName,
		Disabled:      u0.Disabled,
	}, nil
}
