package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	// ErrNoAPIKey means the server was started without a Gemini API key
	ErrNoAPIKey = errors.New("gemini: API key not configured")
	// ErrUpstream covers transport failures and non-2xx provider responses
	ErrUpstream = errors.New("gemini: request to provider failed")
	// ErrMalformedResponse means the provider answered 2xx but without a usable candidate
	ErrMalformedResponse = errors.New("gemini: malformed provider response")
)

// Client is a thin REST client for the generative-language API. One
// synchronous round trip per call: no retries, no caching.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Gemini client. apiKey may be empty; Generate will
// refuse to run until one is configured.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

// WithBaseURL overrides the provider endpoint (used by tests)
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// generateContent request/response envelopes, trimmed to the fields we use.

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// Generate sends the prompt to the model and returns the text of the first
// candidate's first content part verbatim.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrMalformedResponse
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
