package vouchsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the vouch invite service. It serves the unauthenticated
// endpoints and hands out Sessions for authenticated ones.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
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

// Session makes requests as one user, identified by an access token
// issued by the identity provider.
type Session struct {
	client      *Client
	accessToken string
}

// WithToken returns a Session that sends accessToken as a bearer token.
// Token refresh is the identity provider's business; callers create a new
// Session when the token rotates.
func (c *Client) WithToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}
