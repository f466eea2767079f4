// Package gemini talks to the Gemini generateContent endpoint on
// behalf of the chat handler. The client makes exactly one call per
// request and reports what happened as a Result the handler can map
// onto HTTP responses without inspecting provider internals.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Gemini API host.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Fallback is returned as assistant text when the provider answers
// successfully but the response carries no usable candidate text.
const Fallback = "I apologize, but I couldn't generate a response. Please try rephrasing your question about the migration data."

// Status classifies the outcome of a Generate call.
type Status int

const (
	// StatusOK means text was produced (possibly the fallback).
	StatusOK Status = iota
	// StatusSafetyBlocked means the provider's safety filter cut the
	// candidate off.
	StatusSafetyBlocked
	// StatusRateLimited maps an upstream 429.
	StatusRateLimited
	// StatusNotFound maps an upstream 404, usually a bad model name.
	StatusNotFound
	// StatusProviderError is any other non-2xx upstream response.
	StatusProviderError
	// StatusTransportError covers network failures and undecodable
	// response bodies.
	StatusTransportError
)

// Result is the outcome of a single Generate call. Text is populated
// only for StatusOK; Code only for StatusProviderError; Err only for
// StatusTransportError.
type Result struct {
	Status Status
	Text   string
	Code   int
	Err    error
}

// Client issues generateContent calls against a single configured
// model. It is safe for concurrent use.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithModel overrides the default model name.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger attaches a logger for request-level diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a Client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends the assembled turns upstream and classifies the
// response. Sampling parameters and safety thresholds are fixed; the
// caller only controls the conversation content.
func (c *Client) Generate(ctx context.Context, contents []Content) Result {
	reqBody := generateRequest{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     0.5,
			TopK:            40,
			TopP:            0.9,
			MaxOutputTokens: 2048,
		},
		SafetySettings: []safetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Result{Status: StatusTransportError, Err: fmt.Errorf("marshal request: %w", err)}
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{Status: StatusTransportError, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gemini request failed", "error", err)
		return Result{Status: StatusTransportError, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.Warn("gemini rate limited")
		return Result{Status: StatusRateLimited}
	case resp.StatusCode == http.StatusNotFound:
		c.logger.Warn("gemini model not found", "model", c.model)
		return Result{Status: StatusNotFound}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("gemini returned error status", "status", resp.StatusCode)
		return Result{Status: StatusProviderError, Code: resp.StatusCode}
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("gemini response undecodable", "error", err)
		return Result{Status: StatusTransportError, Err: fmt.Errorf("decode response: %w", err)}
	}

	if parsed.safetyBlocked() {
		return Result{Status: StatusSafetyBlocked}
	}

	text := parsed.text()
	if text == "" {
		text = Fallback
	}
	return Result{Status: StatusOK, Text: text}
}
