// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears every variable Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, name := range []string{
		"THAITONE_PROVIDER", "THAITONE_MODEL", "THAITONE_BASE_URL",
		"THAITONE_API_KEY", "GEMINI_API_KEY", "API_KEY", "THAITONE_MIN_DURATION",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.Provider.Name != ProviderGemini {
		t.Errorf("Provider.Name = %q, want gemini", cfg.Provider.Name)
	}
	if cfg.Provider.Model != "gemini-3-flash-preview" {
		t.Errorf("Provider.Model = %q", cfg.Provider.Model)
	}
	if cfg.Session.MinDuration() != 9*time.Second {
		t.Errorf("MinDuration = %v, want 9s", cfg.Session.MinDuration())
	}
	if cfg.Session.HistoryCap != 10 {
		t.Errorf("HistoryCap = %d, want 10", cfg.Session.HistoryCap)
	}
	if cfg.Session.CopyReset() != 2*time.Second {
		t.Errorf("CopyReset = %v, want 2s", cfg.Session.CopyReset())
	}
	if cfg.Session.DefaultTone != "polite" {
		t.Errorf("DefaultTone = %q, want polite", cfg.Session.DefaultTone)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"valid default config", func(c *Config) {}, ""},
		{"ollama provider", func(c *Config) { c.Provider.Name = ProviderOllama }, ""},
		{"invalid provider", func(c *Config) { c.Provider.Name = "palm" }, "provider.name"},
		{"bad base url", func(c *Config) { c.Provider.BaseURL = "not a url" }, "provider.base_url"},
		{"bad base url scheme", func(c *Config) { c.Provider.BaseURL = "ftp://example.com" }, "provider.base_url"},
		{"good base url", func(c *Config) { c.Provider.BaseURL = "http://localhost:8080" }, ""},
		{"timeout zero", func(c *Config) { c.Provider.TimeoutSecs = 0 }, "provider.timeout_secs"},
		{"min duration zero allowed", func(c *Config) { c.Session.MinDurationSecs = 0 }, ""},
		{"negative min duration", func(c *Config) { c.Session.MinDurationSecs = -1 }, "session.min_duration_secs"},
		{"history cap zero", func(c *Config) { c.Session.HistoryCap = 0 }, "session.history_cap"},
		{"copy reset too short", func(c *Config) { c.Session.CopyResetMs = 10 }, "session.copy_reset_ms"},
		{"unknown tone", func(c *Config) { c.Session.DefaultTone = "angry" }, "session.default_tone"},
		{"negative rate", func(c *Config) { c.RateLimit.RequestsPerMinute = -5 }, "rate_limit.requests_per_minute"},
		{"negative burst", func(c *Config) { c.RateLimit.Burst = -1 }, "rate_limit.burst"},
		{"invalid theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error = %v, want ValidateErrors", err)
			}
			found := false
			for _, ve := range verrs {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want error on %s", err, tt.wantField)
			}
		})
	}
}

func TestValidateErrors_Error(t *testing.T) {
	errs := ValidateErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	if got := errs.Error(); got != "a: bad; b: worse" {
		t.Errorf("Error() = %q", got)
	}
	if got := (ValidateErrors{}).Error(); got != "no validation errors" {
		t.Errorf("empty Error() = %q", got)
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	c := &Config{Provider: ProviderConfig{Name: " OpenRouter ", BaseURL: "https://x.test/api/"}}
	c.SetDefaults()

	if c.Provider.Name != ProviderOpenRouter {
		t.Errorf("Name = %q, want normalized", c.Provider.Name)
	}
	if c.Provider.Model != DefaultModels[ProviderOpenRouter] {
		t.Errorf("Model = %q, want openrouter default", c.Provider.Model)
	}
	if c.Provider.BaseURL != "https://x.test/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", c.Provider.BaseURL)
	}
	if c.Session.DefaultTone != "polite" || c.Session.HistoryCap != 10 {
		t.Errorf("session defaults not applied: %+v", c.Session)
	}
}

// =============================================================================
// LOADING
// =============================================================================

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ProviderGemini, cfg.Provider.Name)
	require.Empty(t, cfg.Credentials.APIKey)
}

func TestLoad_TOML(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".thaitone", "config.toml"), `
[provider]
name = "ollama"
base_url = "http://127.0.0.1:11434"

[session]
min_duration_secs = 3
default_tone = "Casual"

[ui]
theme = "light"
`)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ProviderOllama, cfg.Provider.Name)
	require.Equal(t, "qwen2.5:7b", cfg.Provider.Model)
	require.Equal(t, 3*time.Second, cfg.Session.MinDuration())
	require.Equal(t, "casual", cfg.Session.DefaultTone)
	require.Equal(t, 10, cfg.Session.HistoryCap, "unset fields keep defaults")
	require.Equal(t, "light", cfg.UI.Theme)
}

func TestLoad_JSONFallback(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".thaitone", "config.json"), `{"provider":{"name":"openrouter"}}`)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ProviderOpenRouter, cfg.Provider.Name)
	require.Equal(t, DefaultModels[ProviderOpenRouter], cfg.Provider.Model)
}

func TestLoadFromPath_ModelFollowsProvider(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"toml provider only", "a.toml", "[provider]\nname = \"ollama\"\n", DefaultModels[ProviderOllama]},
		{"toml explicit model", "b.toml", "[provider]\nname = \"ollama\"\nmodel = \"llama3.2\"\n", "llama3.2"},
		{"toml model only", "c.toml", "[provider]\nmodel = \"gemini-2.5-pro\"\n", "gemini-2.5-pro"},
		{"json provider only", "d.json", `{"provider":{"name":"openrouter"}}`, DefaultModels[ProviderOpenRouter]},
		{"json explicit model", "e.json", `{"provider":{"name":"ollama","model":"llama3.2"}}`, "llama3.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			cfg, err := LoadFromPath(path)
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.Provider.Model)
		})
	}
}

func TestLoad_InvalidFileIsRejected(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".thaitone", "config.toml"), `
[session]
history_cap = 500
`)

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "session.history_cap")
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".thaitone", "config.toml"), "this is = = not toml")

	cfg, err := Load()
	require.Error(t, err, "load error is reported")
	require.NotNil(t, cfg, "defaults are still returned")
	require.Equal(t, ProviderGemini, cfg.Provider.Name)
}

func TestLoadTOML_FixesPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"1\"\n"), 0644))

	require.NoError(t, LoadTOML(Default(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("THAITONE_PROVIDER", "openrouter")
	t.Setenv("THAITONE_BASE_URL", "https://proxy.test")
	t.Setenv("THAITONE_MIN_DURATION", "0")
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()

	require.Equal(t, "openrouter", cfg.Provider.Name)
	require.Equal(t, DefaultModels[ProviderOpenRouter], cfg.Provider.Model, "model follows the overridden provider")
	require.Equal(t, "https://proxy.test", cfg.Provider.BaseURL)
	require.Equal(t, 0, cfg.Session.MinDurationSecs)
	require.Equal(t, "gem-key", cfg.Credentials.APIKey)
}

func TestEnvAPIKey_Order(t *testing.T) {
	isolate(t)

	require.Empty(t, EnvAPIKey())

	t.Setenv("API_KEY", "generic")
	require.Equal(t, "generic", EnvAPIKey())

	t.Setenv("GEMINI_API_KEY", "gemini")
	require.Equal(t, "gemini", EnvAPIKey())

	t.Setenv("THAITONE_API_KEY", "own")
	require.Equal(t, "own", EnvAPIKey())
}

func TestAPIKey_ReadAtCallTime(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Credentials.APIKey = "from-file"
	require.Equal(t, "from-file", cfg.APIKey())

	t.Setenv("API_KEY", "from-env")
	require.Equal(t, "from-env", cfg.APIKey(), "environment wins without reloading")
}

func TestLoadDotEnv(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".thaitone", ".env"), "GEMINI_API_KEY=dotenv-key\n")
	t.Cleanup(func() { os.Unsetenv("GEMINI_API_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dotenv-key", cfg.Credentials.APIKey)
}

func TestLoadDotEnv_ExistingVariablesWin(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".thaitone", ".env"), "GEMINI_API_KEY=dotenv-key\n")
	t.Setenv("GEMINI_API_KEY", "shell-key")

	LoadDotEnv()
	require.Equal(t, "shell-key", os.Getenv("GEMINI_API_KEY"))
}

// =============================================================================
// SAVE / STRING
// =============================================================================

func TestSaveTOML_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Provider.Name = ProviderOllama
	cfg.Provider.Model = "llama3"
	cfg.Session.DefaultTone = "urgent"
	require.NoError(t, SaveTOML(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# thaitone configuration file"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "llama3", loaded.Provider.Model)
	require.Equal(t, "urgent", loaded.Session.DefaultTone)
}

func TestSaveJSON(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.json")

	require.NoError(t, SaveJSON(Default(), path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, ProviderGemini, loaded.Provider.Name)
}

func TestConfig_StringRedactsKey(t *testing.T) {
	cfg := Default()
	cfg.Credentials.APIKey = "super-secret"

	s := cfg.String()
	require.NotContains(t, s, "super-secret")
	require.Contains(t, s, "[REDACTED]")
	require.Equal(t, "super-secret", cfg.Credentials.APIKey, "String must not modify the config")
}

// =============================================================================
// GET / SET
// =============================================================================

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("provider.name")
	require.NoError(t, err)
	require.Equal(t, "gemini", val)

	require.NoError(t, cfg.Set("session.history_cap", "5"))
	require.Equal(t, 5, cfg.Session.HistoryCap)

	require.NoError(t, cfg.Set("ui.show_help", "yes"))
	require.True(t, cfg.UI.ShowHelp)

	require.NoError(t, cfg.Set("rate_limit.burst", 7))
	require.Equal(t, 7, cfg.RateLimit.Burst)

	_, err = cfg.Get("invalid.key")
	require.Error(t, err)

	require.Error(t, cfg.Set("session.history_cap", "many"))
	require.Error(t, cfg.Set("", "x"))
}

func TestGetAllKeys_Resolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}
}

func TestConfig_Clone(t *testing.T) {
	original := Default()
	clone := original.Clone()
	clone.Provider.Name = "changed"

	if original.Provider.Name != ProviderGemini {
		t.Error("Clone should create an independent copy")
	}
}

// =============================================================================
// GLOBAL (THREAD-SAFE)
// =============================================================================

// TestConfig_ConcurrentAccess checks Global and SetGlobal under the race detector.
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := Default()
			c.Provider.Model = "test-model"
			SetGlobal(c)
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestConfig_ConcurrentReload(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	_ = Global()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ReloadGlobal()
		}()
	}
	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestConfig_SetGlobalOverwrites(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	custom := Default()
	custom.Provider.Model = "custom-model"
	SetGlobal(custom)

	if got := Global().Provider.Model; got != "custom-model" {
		t.Errorf("Global().Provider.Model = %q, want custom-model", got)
	}
}

// =============================================================================
// WATCH
// =============================================================================

func TestWatch_ReloadsOnWrite(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[provider]\nname = \"gemini\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	require.NoError(t, Watch(ctx, path, 20*time.Millisecond, func(cfg *Config, err error) error {
		if err == nil {
			changes <- cfg
		}
		return err
	}))

	writeFile(t, path, "[provider]\nname = \"ollama\"\n")

	select {
	case cfg := <-changes:
		require.Equal(t, ProviderOllama, cfg.Provider.Name)
		require.Equal(t, DefaultModels[ProviderOllama], cfg.Provider.Model, "model follows the new provider")
		require.Eventually(t, func() bool {
			return Global().Provider.Name == ProviderOllama
		}, time.Second, 10*time.Millisecond, "global config swapped")
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatch_RejectedReloadKeepsGlobal(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[provider]\nname = \"gemini\"\n")
	current := Default()
	SetGlobal(current)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rejected := make(chan struct{}, 4)
	require.NoError(t, Watch(ctx, path, 20*time.Millisecond, func(*Config, error) error {
		rejected <- struct{}{}
		return errors.New("client rebuild failed")
	}))

	writeFile(t, path, "[provider]\nname = \"ollama\"\n")

	select {
	case <-rejected:
		time.Sleep(50 * time.Millisecond)
		require.Same(t, current, Global(), "rejected reload leaves the global config alone")
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int
	var mu sync.Mutex
	require.NoError(t, Watch(ctx, path, 20*time.Millisecond, func(*Config, error) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	}))

	writeFile(t, filepath.Join(dir, "other.txt"), "x")
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Zero(t, calls)
}
