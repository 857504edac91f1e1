// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the local Ollama provider for tone adjustment.
//
// The provider needs no API key, which makes it the offline option:
//
//	provider := ollama.NewClientWithConfig(&ollama.ClientConfig{
//	    BaseURL:      "http://127.0.0.1:11434",
//	    DefaultModel: "qwen2.5:7b",
//	})
//	client := adjust.NewClient(provider, nil)
package ollama
