package membersdk

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lubana/membership/pkg/jwtx"
)

// Client calls the unauthenticated endpoints and creates Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup creates a guest account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*UserResponse, error) {
	return call[UserResponse](ctx, c, http.MethodPost, "/v1/users/signup", "", req, http.StatusCreated)
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	tok, err := call[TokenResponse](ctx, c, http.MethodPost, "/v1/users/login", "",
		LoginRequest{Username: username, Password: password}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.AccessToken, tok.User), nil
}

// Plans lists every plan with its quoted price.
func (c *Client) Plans(ctx context.Context) (*ListPlansResponse, error) {
	return call[ListPlansResponse](ctx, c, http.MethodGet, "/v1/plans", "", nil, http.StatusOK)
}

// JWKS fetches the keys that verify access tokens.
func (c *Client) JWKS(ctx context.Context) (*jwtx.JWKS, error) {
	return call[jwtx.JWKS](ctx, c, http.MethodGet, "/.well-known/jwks.json", "", nil, http.StatusOK)
}

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return call[HealthResponse](ctx, c, http.MethodGet, "/livez", "", nil, http.StatusOK)
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return call[HealthResponse](ctx, c, http.MethodGet, "/readyz", "", nil, http.StatusOK)
}
