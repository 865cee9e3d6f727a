// Package client provides a thin REST client for the Kiket platform API.
// Every command-side call is a single request/response round trip: no
// retries, no streaming, a bearer token and a timeout.
package client

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

	"github.com/google/uuid"

	"github.com/kiket/kiket/pkg/log"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.kiket.io/v1"

// ClientOptions holds configuration options for the API client.
type ClientOptions struct {
	// BaseURL of the API server.
	BaseURL string

	// Authentication (token-only).
	Token string

	// CallTimeout bounds each request.
	CallTimeout time.Duration

	// Logger.
	Logger log.Logger

	// HTTPClient overrides the transport, used in tests.
	HTTPClient *http.Client
}

// DefaultClientOptions returns the default client options.
func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{
		BaseURL:     DefaultBaseURL,
		CallTimeout: 30 * time.Second,
		Logger:      log.NewLogger().WithField("component", "api-client"),
	}
}

// Client provides access to the Kiket platform API.
type Client struct {
	options *ClientOptions
	http    *http.Client
	logger  log.Logger
}

// NewClient creates a new API client with the given options.
func NewClient(options *ClientOptions) (*Client, error) {
	if options == nil {
		options = DefaultClientOptions()
	}
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(options.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", options.BaseURL, err)
	}

	logger := options.Logger
	if logger == nil {
		logger = log.NewLogger().WithField("component", "api-client")
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		timeout := options.CallTimeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		options: options,
		http:    httpClient,
		logger:  logger,
	}, nil
}

// Issues returns the issue sub-client.
func (c *Client) Issues() *IssueClient {
	return &IssueClient{client: c, logger: c.logger.WithField("component", "issue-client")}
}

// Projects returns the project sub-client.
func (c *Client) Projects() *ProjectClient {
	return &ProjectClient{client: c, logger: c.logger.WithField("component", "project-client")}
}

// Extensions returns the extension sub-client.
func (c *Client) Extensions() *ExtensionClient {
	return &ExtensionClient{client: c, logger: c.logger.WithField("component", "extension-client")}
}

// apiError is the platform's error envelope.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one JSON request. A non-2xx response becomes an error carrying
// the platform's message when one was provided.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := strings.TrimSuffix(c.options.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.options.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.options.Token)
	}

	c.logger.Debug("API request", log.Str("method", method), log.Str("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && (apiErr.Message != "" || apiErr.Error != "") {
			msg := apiErr.Message
			if msg == "" {
				msg = apiErr.Error
			}
			return fmt.Errorf("API error (%s): %s", resp.Status, msg)
		}
		return fmt.Errorf("API error (%s) from %s", resp.Status, path)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// Ping checks API reachability with the current credentials.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil)
}

// WhoAmI returns the authenticated account.
func (c *Client) WhoAmI(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.do(ctx, http.MethodGet, "/me", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Account describes the authenticated API principal.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
}
