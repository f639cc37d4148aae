package salesdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a typed client for the vendas service. It covers the public
// endpoints directly and creates authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client pointed at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new client account. This endpoint is public.
func (c *SDKClient) Register(ctx context.Context, req CreateClientRequest) (Client, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/client", req)
	if err != nil {
		return Client{}, err
	}

	var created Client
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return Client{}, err
	}
	return created, nil
}

// Login exchanges credentials for an authenticated Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var tokenResp LoginResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{client: c, accessToken: tokenResp.AccessToken}, nil
}

// NewSessionFromToken builds a Session around an existing access token.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// Livez checks the liveness endpoint.
func (c *SDKClient) Livez(ctx context.Context) error {
	return c.checkHealth(ctx, "/livez")
}

// Readyz checks the readiness endpoint.
func (c *SDKClient) Readyz(ctx context.Context) error {
	return c.checkHealth(ctx, "/readyz")
}

func (c *SDKClient) checkHealth(ctx context.Context, path string) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return nil
}
