// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/thaitone/internal/adjust"
	"github.com/jeranaias/thaitone/internal/config"
	"github.com/jeranaias/thaitone/internal/ollama"
	"github.com/jeranaias/thaitone/internal/session"
	"github.com/jeranaias/thaitone/internal/tone"
)

// isolate points HOME at a temp dir and clears credential variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, v := range append(config.APIKeyEnvVars,
		"THAITONE_PROVIDER", "THAITONE_MODEL", "THAITONE_BASE_URL", "THAITONE_MIN_DURATION") {
		t.Setenv(v, "")
	}
	config.ResetGlobalForTesting()
	t.Cleanup(config.ResetGlobalForTesting)
	return home
}

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{nil, CmdTUI},
		{[]string{"tui"}, CmdTUI},
		{[]string{"adjust", "x"}, CmdAdjust},
		{[]string{"a", "x"}, CmdAdjust},
		{[]string{"chat"}, CmdChat},
		{[]string{"tones"}, CmdTones},
		{[]string{"config", "show"}, CmdConfig},
		{[]string{"version"}, CmdVersion},
		{[]string{"--help"}, CmdHelp},
		{[]string{"frobnicate"}, CmdUnknown},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.argv, "_"), func(t *testing.T) {
			got, _ := ParseArgs(tt.argv)
			if got != tt.want {
				t.Errorf("ParseArgs(%v) = %v, want %v", tt.argv, got, tt.want)
			}
		})
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"--provider", "ollama", "--model=llama3.2", "-q", "--json", "-v", "tones"})
	require.Equal(t, CmdTones, cmd)
	require.Equal(t, "ollama", args.Provider)
	require.Equal(t, "llama3.2", args.Model)
	require.True(t, args.Quiet)
	require.True(t, args.JSON)
	require.True(t, args.Verbose)
}

func TestParseArgs_Adjust(t *testing.T) {
	_, args := ParseArgs([]string{"adjust", "-t", "casual", "--scenario=ตอบเพื่อน", "พรุ่งนี้", "ว่างไหม"})
	require.Equal(t, "casual", args.Tone)
	require.Equal(t, "ตอบเพื่อน", args.Scenario)
	require.Equal(t, "พรุ่งนี้ ว่างไหม", args.Text)

	_, args = ParseArgs([]string{"adjust", "--tone", "polite", "--", "-t", "is text"})
	require.Equal(t, "-t is text", args.Text)
}

func TestParseArgs_Config(t *testing.T) {
	_, args := ParseArgs([]string{"config", "SET", "session.default_tone", "casual"})
	require.Equal(t, "set", args.Subcommand)
	require.Equal(t, "session.default_tone", args.ConfigKey)
	require.Equal(t, "casual", args.ConfigVal)
}

// =============================================================================
// EXIT CODE TESTS
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneralError},
		{"usage", ErrMissingArgument("text", ""), ExitUsageError},
		{"unknown tone", fmt.Errorf("x: %w", tone.ErrUnknownTone), ExitUsageError},
		{"config validation", config.ValidateErrors{{Field: "a", Message: "b"}}, ExitConfigError},
		{"wrapped validation", fmt.Errorf("invalid config: %w", config.ValidateErrors{{Field: "a"}}), ExitConfigError},
		{"missing key", &adjust.ConfigurationError{Provider: "gemini"}, ExitConfigError},
		{"service", &adjust.ServiceError{Provider: "gemini", Err: errors.New("503")}, ExitNetworkError},
		{"empty", &adjust.EmptyResponseError{Provider: "gemini"}, ExitNetworkError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDisplayError_JSON(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, "adjust", errors.New("boom"), true)

	var resp JSONResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Equal(t, "boom", *resp.Error)
}

func TestDisplayError_Hints(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ollama down", &adjust.ServiceError{Provider: "ollama", Err: ollama.ErrNotRunning}, "ollama serve"},
		{"missing model", &adjust.ServiceError{Provider: "ollama", Err: ollama.ErrModelNotFound}, "--model"},
		{"no key", &adjust.ConfigurationError{Provider: "gemini"}, "credentials.api_key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayError(&buf, "adjust", tt.err, false)
			require.Contains(t, buf.String(), "hint:")
			require.Contains(t, buf.String(), tt.want)
		})
	}

	var buf bytes.Buffer
	DisplayError(&buf, "adjust", errors.New("boom"), false)
	require.NotContains(t, buf.String(), "hint:")
}

// =============================================================================
// ADJUST TESTS
// =============================================================================

type recordingAdjuster struct {
	text, scenario string
	tone           tone.Kind
	out            string
	err            error
}

func (r *recordingAdjuster) Adjust(ctx context.Context, text string, k tone.Kind, scenario string) (string, error) {
	r.text, r.tone, r.scenario = text, k, scenario
	return r.out, r.err
}

func TestRunAdjust_FromArgs(t *testing.T) {
	cfg := config.Default()
	fake := &recordingAdjuster{out: "เรียนท่านผู้จัดการ"}
	var out bytes.Buffer

	args := Args{Text: "  บอกหัวหน้า  ", Tone: "professional", Scenario: "อีเมล", Quiet: true}
	require.NoError(t, runAdjust(context.Background(), fake, cfg, args, nil, true, &out))

	require.Equal(t, "บอกหัวหน้า", fake.text)
	require.Equal(t, tone.Professional, fake.tone)
	require.Equal(t, "อีเมล", fake.scenario)
	require.Equal(t, "เรียนท่านผู้จัดการ\n", out.String())
}

func TestRunAdjust_FromStdinWithDefaultTone(t *testing.T) {
	cfg := config.Default()
	cfg.Session.DefaultTone = "casual"
	fake := &recordingAdjuster{out: "ok"}

	var out bytes.Buffer
	err := runAdjust(context.Background(), fake, cfg, Args{Quiet: true}, strings.NewReader("ข้อความจาก stdin\n"), false, &out)
	require.NoError(t, err)
	require.Equal(t, "ข้อความจาก stdin", fake.text)
	require.Equal(t, tone.Casual, fake.tone)
}

func TestRunAdjust_JSON(t *testing.T) {
	cfg := config.Default()
	fake := &recordingAdjuster{out: "สวัสดีค่ะ"}
	var out bytes.Buffer

	require.NoError(t, runAdjust(context.Background(), fake, cfg, Args{Text: "หวัดดี", JSON: true}, nil, true, &out))

	var resp struct {
		Success bool         `json:"success"`
		Data    AdjustResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "สวัสดีค่ะ", resp.Data.Adjusted)
	require.Equal(t, tone.Polite, resp.Data.Tone)
	require.Equal(t, config.ProviderGemini, resp.Data.Provider)
}

func TestRunAdjust_Errors(t *testing.T) {
	cfg := config.Default()

	err := runAdjust(context.Background(), &recordingAdjuster{}, cfg, Args{Text: "x", Tone: "shouty"}, nil, true, &bytes.Buffer{})
	require.Equal(t, ExitUsageError, GetExitCode(err))

	err = runAdjust(context.Background(), &recordingAdjuster{}, cfg, Args{Text: "   "}, nil, true, &bytes.Buffer{})
	require.Equal(t, ExitUsageError, GetExitCode(err))

	svc := &recordingAdjuster{err: &adjust.ServiceError{Provider: "gemini", Err: errors.New("down")}}
	err = runAdjust(context.Background(), svc, cfg, Args{Text: "x"}, nil, true, &bytes.Buffer{})
	require.Equal(t, ExitNetworkError, GetExitCode(err))
}

// =============================================================================
// PROVIDER TESTS
// =============================================================================

func TestNewAdjuster_Ollama(t *testing.T) {
	isolate(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"model":"qwen2.5:7b","message":{"role":"assistant","content":"  รบกวนช่วยตรวจสอบด้วยครับ  "},"done":true}`)
	}))
	defer server.Close()

	cfg := config.Default()
	require.NoError(t, ApplyFlags(cfg, Args{Provider: "ollama"}))
	cfg.Provider.BaseURL = server.URL

	client, err := NewAdjuster(cfg)
	require.NoError(t, err)
	require.Equal(t, "ollama", client.Provider())
	require.Equal(t, config.DefaultModels[config.ProviderOllama], client.Model())

	out, err := client.Adjust(context.Background(), "ตรวจให้หน่อย", tone.Polite, "")
	require.NoError(t, err)
	require.Equal(t, "รบกวนช่วยตรวจสอบด้วยครับ", out)
}

func TestNewAdjuster_GeminiNeedsKey(t *testing.T) {
	isolate(t)

	cfg := config.Default()
	client, err := NewAdjuster(cfg)
	require.NoError(t, err)

	_, err = client.Adjust(context.Background(), "x", tone.Polite, "")
	require.ErrorIs(t, err, adjust.ErrConfiguration)
	require.Equal(t, ExitConfigError, GetExitCode(err))
}

func TestReloadable_KeepsFlagsAcrossReload(t *testing.T) {
	isolate(t)

	cfg := config.Default()
	flags := Args{Model: "pinned-model"}
	require.NoError(t, ApplyFlags(cfg, flags))

	r, err := NewReloadable(cfg, flags)
	require.NoError(t, err)
	require.Equal(t, "gemini", r.Client().Provider())

	next := config.Default()
	next.Provider.Name = config.ProviderOllama
	next.Provider.Model = ""
	next.SetDefaults()
	require.NoError(t, r.Reload(next))
	require.Equal(t, "ollama", r.Client().Provider())
	require.Equal(t, "pinned-model", r.Client().Model())

	bad := config.Default()
	bad.Provider.Name = "nope"
	require.Error(t, r.Reload(bad))
	require.Equal(t, "ollama", r.Client().Provider(), "failed reload keeps the previous client")
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, ApplyFlags(cfg, Args{Provider: "OpenRouter"}))
	require.Equal(t, config.ProviderOpenRouter, cfg.Provider.Name)
	require.Equal(t, config.DefaultModels[config.ProviderOpenRouter], cfg.Provider.Model)

	require.NoError(t, ApplyFlags(cfg, Args{Model: "anthropic/claude-3.5-haiku"}))
	require.Equal(t, "anthropic/claude-3.5-haiku", cfg.Provider.Model)

	err := ApplyFlags(cfg, Args{Provider: "carrier-pigeon"})
	require.Error(t, err)
	require.Equal(t, ExitConfigError, GetExitCode(err))
}

func TestSessionConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Session.MinDurationSecs = 5
	cfg.Session.HistoryCap = 4
	cfg.Session.CopyResetMs = 1500
	cfg.Session.DefaultTone = "urgent"

	sc := SessionConfig(cfg)
	require.Equal(t, 5*time.Second, sc.MinDuration)
	require.Equal(t, 5, sc.Steps)
	require.Equal(t, 4, sc.HistoryCap)
	require.Equal(t, 1500*time.Millisecond, sc.CopyReset)
	require.Equal(t, tone.Urgent, sc.DefaultTone)

	require.Equal(t, session.DefaultConfig().Steps, SessionConfig(config.Default()).Steps)
}

// =============================================================================
// TONES TESTS
// =============================================================================

func TestHandleTones_Plain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, HandleTones(Args{}, false, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(tone.All()))
	require.True(t, strings.HasPrefix(lines[0], string(tone.All()[0])))
}

func TestHandleTones_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, HandleTones(Args{JSON: true}, false, &out))

	var resp struct {
		Data []tone.Option `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Len(t, resp.Data, 7)
}

func TestTonesMarkdown(t *testing.T) {
	md := tonesMarkdown()
	for _, opt := range tone.Catalog() {
		require.Contains(t, md, "`"+string(opt.ID)+"`")
	}
}

// =============================================================================
// CONFIG COMMAND TESTS
// =============================================================================

func TestHandleConfig_ShowRedactsKey(t *testing.T) {
	isolate(t)
	cfg := config.Default()
	cfg.Credentials.APIKey = "sk-secret-value"

	var out bytes.Buffer
	require.NoError(t, HandleConfig(cfg, "", Args{JSON: true}, &out))
	require.NotContains(t, out.String(), "sk-secret-value")
	require.Contains(t, out.String(), redacted)

	out.Reset()
	require.NoError(t, HandleConfig(cfg, "", Args{}, &out))
	require.NotContains(t, out.String(), "sk-secret-value")
	require.Contains(t, out.String(), "set (config file)")
}

func TestHandleConfig_InitSetGet(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	var out bytes.Buffer

	require.NoError(t, HandleConfig(config.Default(), path, Args{Subcommand: "init"}, &out))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	err = HandleConfig(config.Default(), path, Args{Subcommand: "init"}, &out)
	require.Error(t, err)

	require.NoError(t, HandleConfig(nil, path, Args{Subcommand: "set", ConfigKey: "session.default_tone", ConfigVal: "casual"}, &out))
	require.NoError(t, HandleConfig(nil, path, Args{Subcommand: "set", ConfigKey: "provider.name", ConfigVal: "ollama"}, &out))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "casual", cfg.Session.DefaultTone)
	require.Equal(t, config.ProviderOllama, cfg.Provider.Name)
	require.Equal(t, config.DefaultModels[config.ProviderOllama], cfg.Provider.Model)

	out.Reset()
	require.NoError(t, HandleConfig(cfg, path, Args{Subcommand: "get", ConfigKey: "session.history_cap"}, &out))
	require.Equal(t, "10\n", out.String())
}

func TestHandleConfig_SetRejectsInvalid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	err := HandleConfig(nil, path, Args{Subcommand: "set", ConfigKey: "session.history_cap", ConfigVal: "500"}, &bytes.Buffer{})
	require.Equal(t, ExitConfigError, GetExitCode(err))
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "invalid value must not be written")

	err = HandleConfig(nil, path, Args{Subcommand: "set", ConfigKey: "nope.field", ConfigVal: "1"}, &bytes.Buffer{})
	require.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestHandleConfig_GetRedactsKey(t *testing.T) {
	cfg := config.Default()
	cfg.Credentials.APIKey = "sk-secret"
	var out bytes.Buffer
	require.NoError(t, HandleConfig(cfg, "", Args{Subcommand: "get", ConfigKey: "credentials.api_key"}, &out))
	require.Equal(t, redacted+"\n", out.String())
}

func TestHandleConfig_UnknownSubcommand(t *testing.T) {
	err := HandleConfig(config.Default(), "", Args{Subcommand: "explode"}, &bytes.Buffer{})
	require.Equal(t, ExitUsageError, GetExitCode(err))
}
