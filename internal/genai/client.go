// Package genai calls the Gemini generateContent REST API for dish
// identification, nutrition estimation and daily plan generation.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotConfigured is returned by every call when no API key is set.
	ErrNotConfigured = errors.New("genai: api key not configured")
	// ErrMalformedResponse is returned when the model answer cannot be
	// decoded into the expected shape.
	ErrMalformedResponse = errors.New("genai: malformed model response")
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

// Config holds the connection settings for the Gemini API.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// Client is a Gemini REST client. It is safe for concurrent use.
type Client struct {
	http           *resty.Client
	apiKey         string
	model          string
	maxRetries     int
	initialBackoff time.Duration
}

// New creates a Client. Empty fields fall back to the public endpoint, the
// default model and a 60s timeout.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{
		http:           c,
		apiKey:         cfg.APIKey,
		model:          cfg.Model,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: 500 * time.Millisecond,
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Wire types for generateContent.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate sends one generateContent request and returns the text of the
// first candidate. Network errors, 429 and 5xx responses are retried with
// exponential backoff up to maxRetries times.
func (c *Client) generate(ctx context.Context, parts []part, out *schema) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body := generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   out,
		},
	}
	path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.initialBackoff
	exp.Multiplier = 2
	exp.Reset()
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.maxRetries)), ctx)

	op := func() (string, error) {
		var result generateResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("key", c.apiKey).
			SetBody(&body).
			Post(path)
		if err != nil {
			if ctx.Err() != nil {
				return "", backoff.Permanent(ctx.Err())
			}
			return "", fmt.Errorf("gemini request: %w", err)
		}

		status := resp.StatusCode()
		switch {
		case status == http.StatusTooManyRequests || status >= 500:
			return "", fmt.Errorf("gemini status %d: %s", status, resp.String())
		case status != http.StatusOK:
			return "", backoff.Permanent(fmt.Errorf("gemini status %d: %s", status, resp.String()))
		}

		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return "", backoff.Permanent(fmt.Errorf("%w: decode envelope: %v", ErrMalformedResponse, err))
		}
		if len(result.Candidates) == 0 {
			return "", backoff.Permanent(fmt.Errorf("%w: no candidates", ErrMalformedResponse))
		}

		var sb strings.Builder
		for _, p := range result.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			return "", backoff.Permanent(fmt.Errorf("%w: empty text", ErrMalformedResponse))
		}
		return text, nil
	}

	notify := func(err error, wait time.Duration) {
		slog.Warn("gemini call failed, retrying", "model", c.model, "error", err, "wait", wait)
	}

	return backoff.RetryNotifyWithData(op, policy, notify)
}
