// Package gemini is the AI collaborator backed by Google's generateContent API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

const generatePath = "/v1beta/models/{model}:generateContent"

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// Timeout bounds a single call. Zero leaves only the caller's context.
	Timeout time.Duration
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Client implements ports.Classifier. Calls are never retried.
type Client struct {
	http   *resty.Client
	apiKey string
	model  string
	logger zerolog.Logger
}

func New(cfg Config, logger zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		http.SetTimeout(cfg.Timeout)
	}
	return &Client{http: http, apiKey: cfg.APIKey, model: cfg.Model, logger: logger}
}

// Classify sends prompt as a single user turn and returns the JSON document
// found in the first candidate.
func (c *Client) Classify(ctx context.Context, prompt string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, domain.ErrAIUnavailable
	}

	body := generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	}

	var out generateResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post(generatePath)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	if resp.IsError() {
		c.logger.Error().
			Int("status_code", resp.StatusCode()).
			Str("api_status", apiErr.Error.Status).
			Str("api_message", apiErr.Error.Message).
			Msg("gemini returned an error")
		return nil, fmt.Errorf("gemini: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: empty candidate list: %w", domain.ErrMalformedAIResponse)
	}
	text := stripFences(out.Candidates[0].Content.Parts[0].Text)
	if !json.Valid([]byte(text)) {
		c.logger.Warn().Int("length", len(text)).Msg("gemini answer is not valid JSON")
		return nil, fmt.Errorf("gemini: %w", domain.ErrMalformedAIResponse)
	}
	return json.RawMessage(text), nil
}

// stripFences removes a surrounding Markdown code block such as ```json ... ```.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
