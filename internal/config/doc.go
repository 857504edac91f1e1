// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// # Key Types
//
//   - Config: main configuration structure
//   - ProviderConfig: backend selection (gemini, openrouter, ollama)
//   - SessionConfig: submission timing and history size
//   - ValidationError, ValidateErrors: validation failures
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (THAITONE_*, GEMINI_API_KEY, API_KEY)
//   - .env in the working directory, then ~/.thaitone/.env
//   - ~/.thaitone/config.toml
//   - ~/.thaitone/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key := cfg.APIKey() // read again before every call
//
// Hot reload:
//
//	config.Watch(ctx, path, 0, func(cfg *config.Config, err error) error { ... })
package config
