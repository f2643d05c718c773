// Package tailor implements the client side of the resume tailoring
// backend: one POST /api/tailor per submission, with every failure reduced to
// a single user-visible message.
package tailor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/rs/zerolog"
)

// EndpointPath is appended to the backend base URL.
const EndpointPath = "/api/tailor"

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the values a Client is built from. BaseURL is resolved once by
// the caller; the client never reads the environment.
type Config struct {
	BaseURL      string
	Timeout      time.Duration // zero keeps the transport default
	StrictSchema bool
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithLogger sets the client's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// Client talks to the tailoring backend.
type Client struct {
	endpoint   string
	strict     bool
	httpClient Doer
	log        zerolog.Logger
}

// NewClient creates a client for cfg.BaseURL.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}

	c := &Client{
		endpoint:   base + EndpointPath,
		strict:     cfg.StrictSchema,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("component", "tailor_client").Logger()
	return c, nil
}

// Endpoint returns the full URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Tailor sends req to the backend and decodes the response. The request is
// assumed to be valid; build it with NewRequest.
func (c *Client) Tailor(ctx context.Context, req types.TailorRequest) (*types.TailorResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &ParseError{Cause: fmt.Errorf("failed to encode request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	c.log.Debug().
		Str("endpoint", c.endpoint).
		Int("resume_chars", len(req.ResumeText)).
		Int("job_description_chars", len(req.JobDescription)).
		Bool("role_title", req.RoleTitle != nil).
		Msg("sending tailor request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("tailor request failed")
		return nil, &TransportError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("backend returned non-success status")
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to read response body")
		return nil, &TransportError{Cause: err}
	}

	if c.strict {
		if err := schemas.ValidateTailorResult(body); err != nil {
			c.log.Warn().Err(err).Msg("response does not match result schema")
			return nil, &ParseError{Cause: err}
		}
	}

	// A literal null body decodes to an empty result, shown as empty panels.
	var result types.TailorResult
	if err := json.Unmarshal(body, &result); err != nil {
		c.log.Warn().Err(err).Msg("failed to decode response body")
		return nil, &ParseError{Cause: err}
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Int("matched_keywords", len(result.MatchedKeywords)).
		Int("missing_keywords", len(result.MissingButReferencedKeywords)).
		Msg("tailor request succeeded")

	return &result, nil
}
