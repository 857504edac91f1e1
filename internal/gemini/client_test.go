// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/thaitone/internal/adjust"
	"github.com/jeranaias/thaitone/internal/tone"
)

type capturedRequest struct {
	Path   string
	APIKey string
	Body   map[string]any
}

func newTestServer(t *testing.T, status int, body string, got *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Path = r.URL.Path
		got.APIKey = r.Header.Get("x-goog-api-key")
		if got.APIKey == "" {
			got.APIKey = r.URL.Query().Get("key")
		}
		_ = json.NewDecoder(r.Body).Decode(&got.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerate_Success(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "เรียนหัวหน้า "}, {"text": "ขออนุญาตลางานครับ"}]},
			"finishReason": "STOP"
		}]
	}`, &got)

	c := NewClient().WithBaseURL(srv.URL)
	out, err := c.Generate(context.Background(), adjust.Request{
		APIKey:      "gm-key",
		System:      "system role",
		Prompt:      "rewrite this",
		Temperature: 0.7,
	})
	require.NoError(t, err)
	require.Equal(t, "เรียนหัวหน้า ขออนุญาตลางานครับ", out)

	require.True(t, strings.HasSuffix(got.Path, "models/"+DefaultModel+":generateContent"), "path = %s", got.Path)
	require.Equal(t, "gm-key", got.APIKey)

	sys, ok := got.Body["systemInstruction"].(map[string]any)
	require.True(t, ok, "systemInstruction missing: %v", got.Body)
	parts := sys["parts"].([]any)
	require.Equal(t, "system role", parts[0].(map[string]any)["text"])

	gen, ok := got.Body["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing: %v", got.Body)
	require.InDelta(t, 0.7, gen["temperature"], 1e-6)
}

func TestGenerate_NoCandidates(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"candidates": []}`, &got)

	out, err := NewClient().WithBaseURL(srv.URL).Generate(context.Background(), adjust.Request{APIKey: "k"})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGenerate_HTTPError(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusForbidden,
		`{"error": {"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED"}}`, &got)

	_, err := NewClient().WithBaseURL(srv.URL).Generate(context.Background(), adjust.Request{APIKey: "bad"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "gemini: generate content")
}

func TestGenerate_ModelOverride(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`, &got)

	c := NewClient().WithBaseURL(srv.URL).WithModel("gemini-2.5-flash")
	_, err := c.Generate(context.Background(), adjust.Request{APIKey: "k", Model: "gemini-2.5-pro"})
	require.NoError(t, err)
	require.Contains(t, got.Path, "gemini-2.5-pro:generateContent")
}

func TestThroughAdjustClient(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"  ด่วนมาก!  "}]}}]}`, &got)

	c := adjust.NewClient(NewClient().WithBaseURL(srv.URL), func() string { return "k" })
	out, err := c.Adjust(context.Background(), "ส่งงาน", tone.Urgent, "")
	require.NoError(t, err)
	require.Equal(t, "ด่วนมาก!", out)

	_, err = adjust.NewClient(NewClient().WithBaseURL(srv.URL), func() string { return "" }).
		Adjust(context.Background(), "ส่งงาน", tone.Urgent, "")
	require.ErrorIs(t, err, adjust.ErrConfiguration)
}
