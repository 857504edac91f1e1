// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package adjust rewrites Thai text into a requested tone through a
// generative-language provider.
//
// The Client owns prompt construction, credential lookup and the error
// taxonomy; providers (gemini, cloud, ollama) only move a Request over the
// wire and hand back the raw model text.
package adjust

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeranaias/thaitone/internal/tone"
)

// Request is what a provider sends to its backend.
type Request struct {
	APIKey      string
	Model       string
	System      string
	Prompt      string
	Temperature float64
}

// Provider performs one non-streaming generation call.
// Generate returns the model text as-is; an empty string means the backend
// answered without text.
type Provider interface {
	Name() string
	RequiresKey() bool
	Generate(ctx context.Context, req Request) (string, error)
}

// CredentialFunc returns the API key to use for the next call.
type CredentialFunc func() string

// Client adjusts text through a Provider.
type Client struct {
	provider   Provider
	model      string
	credential CredentialFunc
	limiter    *rate.Limiter
}

// NewClient creates a client for provider. The credential is looked up on
// every call so configuration changes apply without rebuilding the client.
func NewClient(provider Provider, credential CredentialFunc) *Client {
	return &Client{
		provider:   provider,
		credential: credential,
	}
}

// WithModel sets the model identifier sent to the provider.
func (c *Client) WithModel(model string) *Client {
	c.model = strings.TrimSpace(model)
	return c
}

// WithLimiter spaces outgoing requests with l. A nil limiter disables limiting.
func (c *Client) WithLimiter(l *rate.Limiter) *Client {
	c.limiter = l
	return c
}

// Provider returns the provider name.
func (c *Client) Provider() string {
	return c.provider.Name()
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Adjust rewrites text into tone k, optionally steered by scenario.
//
// Errors are always one of *ConfigurationError, *EmptyResponseError or
// *ServiceError. There is no retry.
func (c *Client) Adjust(ctx context.Context, text string, k tone.Kind, scenario string) (string, error) {
	name := c.provider.Name()

	if !k.Valid() {
		return "", &ServiceError{Provider: name, Err: fmt.Errorf("%w: %q", tone.ErrUnknownTone, k)}
	}

	var key string
	if c.credential != nil {
		key = strings.TrimSpace(c.credential())
	}
	if c.provider.RequiresKey() && key == "" {
		return "", &ConfigurationError{Provider: name}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &ServiceError{Provider: name, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	req := Request{
		APIKey:      key,
		Model:       c.model,
		System:      SystemInstruction,
		Prompt:      BuildPrompt(text, k, scenario),
		Temperature: Temperature,
	}

	start := time.Now()
	out, err := c.provider.Generate(ctx, req)
	out = strings.TrimSpace(out)

	switch {
	case err != nil && errors.Is(err, ErrEmptyResponse):
		err = &EmptyResponseError{Provider: name}
	case err != nil:
		err = &ServiceError{Provider: name, Err: err}
	case out == "":
		err = &EmptyResponseError{Provider: name}
	}

	log.Printf("adjust: provider=%s model=%s tone=%s duration=%v outcome=%s",
		name, c.model, k, time.Since(start).Round(time.Millisecond), Category(err))

	if err != nil {
		return "", err
	}
	return out, nil
}
