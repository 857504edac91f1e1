// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud provides the OpenRouter provider for tone adjustment.
//
// # Key Types
//
//   - OpenRouterClient: non-streaming chat completions, implements adjust.Provider
//   - ChatRequest / ChatResponse: OpenAI-compatible wire types
//   - OpenRouterError: typed API error carrying HTTP status and error code
//
// # Usage
//
//	provider := cloud.NewOpenRouterClient().WithModel("google/gemini-2.5-flash")
//	client := adjust.NewClient(provider, credentialFunc)
//	out, err := client.Adjust(ctx, text, tone.Polite, "")
//
// API keys are passed per request and never logged.
package cloud
