// Package github is the GitHub data retrieval boundary: GraphQL queries for
// repositories and commit history, REST calls for the profile and README.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/readmetrics/readmetrics/internal/cache"
)

// API roots, overridable for tests.
const (
	DefaultGraphQLURL = "https://api.github.com/graphql"
	DefaultRESTURL    = "https://api.github.com"
)

// defaultTimeout bounds a single API call.
const defaultTimeout = 30 * time.Second

// Sentinel errors for API failures.
var (
	// ErrUnexpectedStatus is returned for unexpected HTTP statuses.
	ErrUnexpectedStatus = errors.New("unexpected github response status")

	// ErrGraphQL is returned when the GraphQL layer reports errors.
	ErrGraphQL = errors.New("github graphql error")
)

// Client is an authenticated GitHub API client with an optional response
// cache for idempotent queries.
type Client struct {
	token      string
	graphqlURL string
	restURL    string
	httpClient *http.Client
	store      *cache.Store
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoints overrides the API roots, mainly for tests.
func WithEndpoints(graphqlURL, restURL string) Option {
	return func(c *Client) {
		c.graphqlURL = graphqlURL
		c.restURL = restURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithCache attaches a response cache. A nil store disables caching.
func WithCache(store *cache.Store) Option {
	return func(c *Client) { c.store = store }
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a GitHub client for the given token.
func NewClient(token string, opts ...Option) *Client {
	client := &Client{
		token:      token,
		graphqlURL: DefaultGraphQLURL,
		restURL:    DefaultRESTURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// graphqlRequest is the GraphQL POST body.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlEnvelope is the GraphQL response wrapper.
type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// graphql executes a query and decodes the data payload into out. Responses
// are served from the cache when available, keyed by query and variables.
func (c *Client) graphql(ctx context.Context, query string, vars map[string]any, out any) error {
	key, keyErr := cacheKey(query, vars)
	if keyErr == nil {
		if data, ok := c.store.Get(key); ok {
			c.logger.DebugContext(ctx, "graphql cache hit")

			return json.Unmarshal(data, out)
		}
	}

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body), http.StatusOK)
	if err != nil {
		return err
	}

	var envelope graphqlEnvelope

	err = json.Unmarshal(respBody, &envelope)
	if err != nil {
		return fmt.Errorf("decode graphql envelope: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: %s", ErrGraphQL, envelope.Errors[0].Message)
	}

	if keyErr == nil {
		putErr := c.store.Put(key, envelope.Data)
		if putErr != nil {
			c.logger.WarnContext(ctx, "graphql cache write failed", "error", putErr)
		}
	}

	err = json.Unmarshal(envelope.Data, out)
	if err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}

	return nil
}

// rest executes a REST call and decodes the JSON response into out.
func (c *Client) rest(ctx context.Context, method, path string, body io.Reader, wantStatus int, out any) error {
	respBody, err := c.do(ctx, method, c.restURL+path, body, wantStatus)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	err = json.Unmarshal(respBody, out)
	if err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

// do performs one authenticated HTTP call.
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, wantStatus int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("%w: %s from %s", ErrUnexpectedStatus, resp.Status, endpoint)
	}

	return respBody, nil
}

// cacheKey derives a stable cache key from a query and its variables.
func cacheKey(query string, vars map[string]any) (string, error) {
	encoded, err := json.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("marshal cache key vars: %w", err)
	}

	return query + string(encoded), nil
}
