// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the Google Gemini provider for tone adjustment.
//
// Requests go through the official genai SDK against the Gemini Developer
// API. A genai client is built per call because the API key is resolved at
// call time and may change while the program runs.
package gemini

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/jeranaias/thaitone/internal/adjust"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-3-flash-preview"

	// DefaultTimeout bounds a single generation call.
	DefaultTimeout = 60 * time.Second

	// ProviderName identifies this provider in config and logs.
	ProviderName = "gemini"
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a Gemini client with default settings.
func NewClient() *Client {
	return &Client{
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithBaseURL points the client at a different API host (tests, proxies).
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimRight(url, "/")
	return c
}

// WithTimeout sets the HTTP timeout for generation calls.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		c.httpClient = &http.Client{Timeout: timeout}
	}
	return c
}

// WithModel sets the default model.
func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

// Name implements adjust.Provider.
func (c *Client) Name() string { return ProviderName }

// RequiresKey implements adjust.Provider.
func (c *Client) RequiresKey() bool { return true }

// Generate implements adjust.Provider.
func (c *Client) Generate(ctx context.Context, req adjust.Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	cfg := &genai.ClientConfig{
		APIKey:     req.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL + "/"}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}

	temperature := float32(req.Temperature)
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
		Temperature: &temperature,
	}
	contents := []*genai.Content{{
		Role:  string(genai.RoleUser),
		Parts: []*genai.Part{{Text: req.Prompt}},
	}}

	log.Printf("API Request: gemini generateContent model=%s", model)
	start := time.Now()

	resp, err := client.Models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	log.Printf("API Response: gemini generateContent (%v)", time.Since(start).Round(time.Millisecond))
	return responseText(resp), nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
