// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// provider.go - Builds the adjustment client and session settings from config.
package cli

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/jeranaias/thaitone/internal/adjust"
	"github.com/jeranaias/thaitone/internal/cloud"
	"github.com/jeranaias/thaitone/internal/config"
	"github.com/jeranaias/thaitone/internal/gemini"
	"github.com/jeranaias/thaitone/internal/ollama"
	"github.com/jeranaias/thaitone/internal/session"
	"github.com/jeranaias/thaitone/internal/tone"
)

// ApplyFlags applies --provider and --model to cfg and re-validates it.
func ApplyFlags(cfg *config.Config, args Args) error {
	if args.Provider != "" {
		if !strings.EqualFold(args.Provider, cfg.Provider.Name) {
			cfg.Provider.Model = ""
		}
		cfg.Provider.Name = args.Provider
	}
	if args.Model != "" {
		cfg.Provider.Model = args.Model
	}
	cfg.SetDefaults()
	return cfg.Validate()
}

// NewProvider returns the backend named in cfg.
func NewProvider(cfg *config.Config) (adjust.Provider, error) {
	p := cfg.Provider
	switch p.Name {
	case config.ProviderGemini:
		c := gemini.NewClient().WithModel(p.Model).WithTimeout(p.Timeout())
		if p.BaseURL != "" {
			c = c.WithBaseURL(p.BaseURL)
		}
		return c, nil

	case config.ProviderOpenRouter:
		c := cloud.NewOpenRouterClient().WithModel(p.Model).WithTimeout(p.Timeout())
		if p.BaseURL != "" {
			c = c.WithBaseURL(p.BaseURL)
		}
		return c, nil

	case config.ProviderOllama:
		return ollama.NewClientWithConfig(&ollama.ClientConfig{
			BaseURL:      p.BaseURL,
			Timeout:      p.Timeout(),
			DefaultModel: p.Model,
		}), nil

	default:
		return nil, config.ValidationError{
			Field:   "provider.name",
			Message: fmt.Sprintf("unknown provider '%s'", p.Name),
		}
	}
}

// NewAdjuster builds the adjustment client for cfg. The API key is read
// from the global config on every call so hot reloads take effect.
func NewAdjuster(cfg *config.Config) (*adjust.Client, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	client := adjust.NewClient(provider, func() string {
		return config.Global().APIKey()
	}).WithModel(cfg.Provider.Model)

	if rpm := cfg.RateLimit.RequestsPerMinute; rpm > 0 {
		burst := cfg.RateLimit.Burst
		if burst < 1 {
			burst = 1
		}
		client = client.WithLimiter(rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst))
	}
	return client, nil
}

// Reloadable is an adjuster whose client can be swapped while a session
// is running. A submission in flight keeps the client it started with.
type Reloadable struct {
	flags   Args
	current atomic.Pointer[adjust.Client]
}

// NewReloadable builds the client for cfg. flags are re-applied on every
// Reload so command-line overrides survive config edits.
func NewReloadable(cfg *config.Config, flags Args) (*Reloadable, error) {
	client, err := NewAdjuster(cfg)
	if err != nil {
		return nil, err
	}
	r := &Reloadable{flags: flags}
	r.current.Store(client)
	return r, nil
}

// Adjust implements session.Adjuster.
func (r *Reloadable) Adjust(ctx context.Context, text string, k tone.Kind, scenario string) (string, error) {
	return r.current.Load().Adjust(ctx, text, k, scenario)
}

// Client returns the client used by the next call.
func (r *Reloadable) Client() *adjust.Client {
	return r.current.Load()
}

// Reload rebuilds the client from cfg. On error the previous client stays.
func (r *Reloadable) Reload(cfg *config.Config) error {
	next := cfg.Clone()
	if err := ApplyFlags(next, r.flags); err != nil {
		return err
	}
	client, err := NewAdjuster(next)
	if err != nil {
		return err
	}
	r.current.Store(client)
	return nil
}

// SessionConfig converts the [session] section into controller settings.
func SessionConfig(cfg *config.Config) session.Config {
	sc := session.DefaultConfig()
	sc.MinDuration = cfg.Session.MinDuration()
	if steps := int(sc.MinDuration / sc.TickInterval); steps > 0 {
		sc.Steps = steps
	}
	sc.CopyReset = cfg.Session.CopyReset()
	sc.HistoryCap = cfg.Session.HistoryCap
	if k, err := tone.Parse(cfg.Session.DefaultTone); err == nil {
		sc.DefaultTone = k
	}
	return sc
}

// resolveTone parses a --tone flag, falling back to the configured default.
func resolveTone(flag string, cfg *config.Config) (tone.Kind, error) {
	if flag == "" {
		flag = cfg.Session.DefaultTone
	}
	k, err := tone.Parse(flag)
	if err != nil {
		return "", &UsageError{
			Field:   "tone",
			Value:   flag,
			Reason:  "unknown tone",
			Example: "thaitone adjust --tone polite ข้อความ",
		}
	}
	return k, nil
}
