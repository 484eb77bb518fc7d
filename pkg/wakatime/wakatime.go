// Package wakatime fetches the weekly time-tracking summary from the
// WakaTime API and exposes it as renderable measures.
package wakatime

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/readmetrics/readmetrics/pkg/graphics"
)

// DefaultBaseURL is the production WakaTime API root.
const DefaultBaseURL = "https://wakatime.com/api/v1"

// statsPath is the endpoint for the rolling seven-day summary.
const statsPath = "/users/current/stats/last_7_days"

// allTimePath is the endpoint for the lifetime code-time total.
const allTimePath = "/users/current/all_time_since_today"

// defaultTimeout bounds a single API call.
const defaultTimeout = 30 * time.Second

// Sentinel errors for API failures.
var (
	// ErrUnexpectedStatus is returned for non-200 API responses.
	ErrUnexpectedStatus = errors.New("unexpected wakatime response status")

	// ErrInvalidPayload is returned when the response fails schema validation.
	ErrInvalidPayload = errors.New("wakatime payload failed schema validation")
)

//go:embed schema.json
var payloadSchema string

// Summary is the weekly activity summary consumed by the report renderers.
type Summary struct {
	Timezone         string
	Languages        []graphics.Measure
	Editors          []graphics.Measure
	Projects         []graphics.Measure
	OperatingSystems []graphics.Measure
}

// Client is a WakaTime API client bound to a single API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a WakaTime client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// payload mirrors the wire shape of the stats endpoint.
type payload struct {
	Data struct {
		Timezone         string        `json:"timezone"`
		Languages        []wireMeasure `json:"languages"`
		Editors          []wireMeasure `json:"editors"`
		Projects         []wireMeasure `json:"projects"`
		OperatingSystems []wireMeasure `json:"operating_systems"`
	} `json:"data"`
}

type wireMeasure struct {
	Name    string  `json:"name"`
	Text    string  `json:"text"`
	Percent float64 `json:"percent"`
}

// Latest fetches and validates the rolling seven-day summary.
func (c *Client) Latest(ctx context.Context) (*Summary, error) {
	endpoint := c.baseURL + statsPath + "?api_key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build wakatime request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch wakatime stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read wakatime response: %w", err)
	}

	return ParseSummary(body)
}

// ParseSummary validates raw payload bytes against the embedded schema and
// decodes them into a Summary.
func ParseSummary(body []byte) (*Summary, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(payloadSchema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("validate wakatime payload: %w", err)
	}

	if !result.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, result.Errors())
	}

	var decoded payload

	err = json.Unmarshal(body, &decoded)
	if err != nil {
		return nil, fmt.Errorf("decode wakatime payload: %w", err)
	}

	return &Summary{
		Timezone:         decoded.Data.Timezone,
		Languages:        toMeasures(decoded.Data.Languages),
		Editors:          toMeasures(decoded.Data.Editors),
		Projects:         toMeasures(decoded.Data.Projects),
		OperatingSystems: toMeasures(decoded.Data.OperatingSystems),
	}, nil
}

// AllTime fetches the human-readable lifetime code-time total, for example
// "1,234 hrs 56 mins".
func (c *Client) AllTime(ctx context.Context) (string, error) {
	endpoint := c.baseURL + allTimePath + "?api_key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build wakatime request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch wakatime all-time total: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var decoded struct {
		Data struct {
			Text string `json:"text"`
		} `json:"data"`
	}

	err = json.NewDecoder(resp.Body).Decode(&decoded)
	if err != nil {
		return "", fmt.Errorf("decode wakatime all-time payload: %w", err)
	}

	return decoded.Data.Text, nil
}

func toMeasures(wire []wireMeasure) []graphics.Measure {
	measures := make([]graphics.Measure, len(wire))
	for i, entry := range wire {
		measures[i] = graphics.Measure{Name: entry.Name, Text: entry.Text, Percent: entry.Percent}
	}

	return measures
}
