// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for thaitone.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// .env files, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.thaitone/config.toml
//   - ~/.thaitone/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/thaitone/internal/tone"
	"github.com/jeranaias/thaitone/internal/util"
)

// Provider names.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

// DefaultModels maps each provider to the model used when none is configured.
var DefaultModels = map[string]string{
	ProviderGemini:     "gemini-3-flash-preview",
	ProviderOpenRouter: "google/gemini-2.5-flash",
	ProviderOllama:     "qwen2.5:7b",
}

// APIKeyEnvVars are checked in order; the first non-empty one wins.
var APIKeyEnvVars = []string{"THAITONE_API_KEY", "GEMINI_API_KEY", "API_KEY"}

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete thaitone configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	Provider    ProviderConfig    `toml:"provider" json:"provider"`
	Credentials CredentialsConfig `toml:"credentials" json:"credentials"`
	Session     SessionConfig     `toml:"session" json:"session"`
	RateLimit   RateLimitConfig   `toml:"rate_limit" json:"rate_limit"`
	UI          UIConfig          `toml:"ui" json:"ui"`
}

// ProviderConfig selects the generation backend.
type ProviderConfig struct {
	// Name is one of: gemini, openrouter, ollama
	Name string `toml:"name" json:"name"`
	// Model overrides the provider's default model
	Model string `toml:"model" json:"model"`
	// BaseURL overrides the provider endpoint (empty = provider default)
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs bounds a single generation call
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// CredentialsConfig holds the API key for providers that need one.
type CredentialsConfig struct {
	APIKey string `toml:"api_key" json:"api_key"`
}

// SessionConfig controls submission timing and history size.
type SessionConfig struct {
	// MinDurationSecs is the minimum time a submission stays busy
	MinDurationSecs int `toml:"min_duration_secs" json:"min_duration_secs"`
	// HistoryCap bounds the in-memory history
	HistoryCap int `toml:"history_cap" json:"history_cap"`
	// CopyResetMs is how long the "copied" indicator stays on
	CopyResetMs int `toml:"copy_reset_ms" json:"copy_reset_ms"`
	// DefaultTone is the tone selected when a session starts
	DefaultTone string `toml:"default_tone" json:"default_tone"`
}

// RateLimitConfig spaces outgoing generation calls. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `toml:"requests_per_minute" json:"requests_per_minute"`
	Burst             int `toml:"burst" json:"burst"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// ShowHelp shows the full key help under the TUI
	ShowHelp bool `toml:"show_help" json:"show_help"`
}

// MinDuration returns MinDurationSecs as a duration.
func (s SessionConfig) MinDuration() time.Duration {
	return time.Duration(s.MinDurationSecs) * time.Second
}

// CopyReset returns CopyResetMs as a duration.
func (s SessionConfig) CopyReset() time.Duration {
	return time.Duration(s.CopyResetMs) * time.Millisecond
}

// Timeout returns TimeoutSecs as a duration.
func (p ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSecs) * time.Second
}

// RequiresKey reports whether the configured provider needs an API key.
func (p ProviderConfig) RequiresKey() bool {
	return p.Name != ProviderOllama
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Provider: ProviderConfig{
			Name:        ProviderGemini,
			Model:       DefaultModels[ProviderGemini],
			TimeoutSecs: 60,
		},

		Session: SessionConfig{
			MinDurationSecs: 9,
			HistoryCap:      10,
			CopyResetMs:     2000,
			DefaultTone:     string(tone.Default),
		},

		RateLimit: RateLimitConfig{
			RequestsPerMinute: 20,
			Burst:             3,
		},

		UI: UIConfig{
			Theme:    "auto",
			ShowHelp: false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the thaitone configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".thaitone"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the path of the TUI log file.
func LogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "thaitone.log"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// ensureSecurePermissions tightens config files to 0600; they may hold an API key.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}

	return nil
}

// =============================================================================
// .ENV FILES
// =============================================================================

// LoadDotEnv loads .env from the working directory and the config directory
// into the process environment. Variables that are already set win.
func LoadDotEnv() {
	var files []string
	if _, err := os.Stat(".env"); err == nil {
		files = append(files, ".env")
	}
	if dir, err := ConfigDir(); err == nil {
		p := filepath.Join(dir, ".env")
		if _, err := os.Stat(p); err == nil {
			files = append(files, p)
		}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", f, err)
		}
	}
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// .env files and environment overrides are applied last.
func Load() (*Config, error) {
	LoadDotEnv()

	cfg := Default()
	var loadErr error

	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	cfg = Default()
	cfg, err := finish(cfg)
	if err != nil {
		return nil, err
	}

	// Defaults, with any load error for informational purposes
	return cfg, loadErr
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	before := cfg.Provider
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	followProvider(cfg, before, md.IsDefined("provider", "model"))
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	before := cfg.Provider
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	var named struct {
		Provider struct {
			Model *string `json:"model"`
		} `json:"provider"`
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	followProvider(cfg, before, named.Provider.Model != nil)
	return nil
}

// followProvider drops the model inherited from before when a file switches
// provider without naming a model, so SetDefaults picks the new provider's.
func followProvider(cfg *Config, before ProviderConfig, modelSet bool) {
	if !modelSet && cfg.Provider.Name != before.Name {
		cfg.Provider.Model = ""
	}
}

// LoadFromPath loads configuration from a specific file path with full validation.
// Unset fields keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# thaitone configuration file")
	fmt.Fprintln(file, "# API keys may also come from THAITONE_API_KEY, GEMINI_API_KEY or API_KEY")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file atomically with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFileWithDir(path, data, 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// ==========================================================================
	// Provider
	// ==========================================================================

	if _, ok := DefaultModels[strings.ToLower(c.Provider.Name)]; !ok {
		errs = append(errs, ValidationError{
			Field:   "provider.name",
			Message: fmt.Sprintf("invalid provider '%s', must be one of: gemini, openrouter, ollama", c.Provider.Name),
		})
	}

	if c.Provider.BaseURL != "" {
		u, err := url.Parse(c.Provider.BaseURL)
		if err != nil || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "provider.base_url",
				Message: fmt.Sprintf("invalid URL '%s'", c.Provider.BaseURL),
			})
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, ValidationError{
				Field:   "provider.base_url",
				Message: fmt.Sprintf("URL scheme must be http or https, got '%s'", u.Scheme),
			})
		}
	}

	if c.Provider.TimeoutSecs < 1 || c.Provider.TimeoutSecs > 600 {
		errs = append(errs, ValidationError{
			Field:   "provider.timeout_secs",
			Message: fmt.Sprintf("timeout %d out of range (1-600)", c.Provider.TimeoutSecs),
		})
	}

	// ==========================================================================
	// Session
	// ==========================================================================

	if c.Session.MinDurationSecs < 0 || c.Session.MinDurationSecs > 60 {
		errs = append(errs, ValidationError{
			Field:   "session.min_duration_secs",
			Message: fmt.Sprintf("duration %d out of range (0-60)", c.Session.MinDurationSecs),
		})
	}

	if c.Session.HistoryCap < 1 || c.Session.HistoryCap > 100 {
		errs = append(errs, ValidationError{
			Field:   "session.history_cap",
			Message: fmt.Sprintf("history cap %d out of range (1-100)", c.Session.HistoryCap),
		})
	}

	if c.Session.CopyResetMs < 100 || c.Session.CopyResetMs > 60000 {
		errs = append(errs, ValidationError{
			Field:   "session.copy_reset_ms",
			Message: fmt.Sprintf("copy reset %d out of range (100-60000)", c.Session.CopyResetMs),
		})
	}

	if _, err := tone.Parse(c.Session.DefaultTone); err != nil {
		errs = append(errs, ValidationError{
			Field:   "session.default_tone",
			Message: err.Error(),
		})
	}

	// ==========================================================================
	// Rate limit
	// ==========================================================================

	if c.RateLimit.RequestsPerMinute < 0 {
		errs = append(errs, ValidationError{
			Field:   "rate_limit.requests_per_minute",
			Message: "must not be negative",
		})
	}
	if c.RateLimit.Burst < 0 {
		errs = append(errs, ValidationError{
			Field:   "rate_limit.burst",
			Message: "must not be negative",
		})
	}

	// ==========================================================================
	// UI
	// ==========================================================================

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields and
// normalizes names.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	if c.Provider.Name == "" {
		c.Provider.Name = defaults.Provider.Name
	}
	c.Provider.Name = strings.ToLower(strings.TrimSpace(c.Provider.Name))
	if c.Provider.Model == "" {
		c.Provider.Model = DefaultModels[c.Provider.Name]
	}
	if c.Provider.TimeoutSecs == 0 {
		c.Provider.TimeoutSecs = defaults.Provider.TimeoutSecs
	}
	c.Provider.BaseURL = strings.TrimRight(c.Provider.BaseURL, "/")

	if c.Session.HistoryCap == 0 {
		c.Session.HistoryCap = defaults.Session.HistoryCap
	}
	if c.Session.CopyResetMs == 0 {
		c.Session.CopyResetMs = defaults.Session.CopyResetMs
	}
	if c.Session.DefaultTone == "" {
		c.Session.DefaultTone = defaults.Session.DefaultTone
	}
	if k, err := tone.Parse(c.Session.DefaultTone); err == nil {
		c.Session.DefaultTone = string(k)
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - THAITONE_PROVIDER: overrides provider.name
//   - THAITONE_MODEL: overrides provider.model
//   - THAITONE_BASE_URL: overrides provider.base_url
//   - THAITONE_API_KEY, GEMINI_API_KEY, API_KEY: override credentials.api_key
//   - THAITONE_MIN_DURATION: overrides session.min_duration_secs
func (c *Config) ApplyEnvOverrides() {
	if name := os.Getenv("THAITONE_PROVIDER"); name != "" {
		if !strings.EqualFold(name, c.Provider.Name) {
			// A different provider's model name would not make sense.
			c.Provider.Model = ""
		}
		c.Provider.Name = name
	}

	if model := os.Getenv("THAITONE_MODEL"); model != "" {
		c.Provider.Model = model
	}

	if base := os.Getenv("THAITONE_BASE_URL"); base != "" {
		c.Provider.BaseURL = base
	}

	if key := EnvAPIKey(); key != "" {
		c.Credentials.APIKey = key
	}

	if secs := os.Getenv("THAITONE_MIN_DURATION"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil {
			c.Session.MinDurationSecs = n
		}
	}
}

// EnvAPIKey returns the first non-empty API key environment variable.
func EnvAPIKey() string {
	for _, name := range APIKeyEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// APIKey returns the credential to use right now: the environment first,
// then the config file.
func (c *Config) APIKey() string {
	if key := EnvAPIKey(); key != "" {
		return key
	}
	return strings.TrimSpace(c.Credentials.APIKey)
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "provider.name").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "session.history_cap").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	parts := strings.Split(key, ".")
	if key == "" || len(parts) == 0 {
		return reflect.Value{}, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			lower := strings.ToLower(strVal)
			field.SetBool(strVal == "1" || lower == "true" || lower == "yes")
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"provider.name",
		"provider.model",
		"provider.base_url",
		"provider.timeout_secs",
		"credentials.api_key",
		"session.min_duration_secs",
		"session.history_cap",
		"session.copy_reset_ms",
		"session.default_tone",
		"rate_limit.requests_per_minute",
		"rate_limit.burst",
		"ui.theme",
		"ui.show_help",
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a JSON rendering of the config with the API key redacted.
func (c *Config) String() string {
	safe := c.Clone()
	if safe.Credentials.APIKey != "" {
		safe.Credentials.APIKey = "[REDACTED]"
	}

	data, _ := json.MarshalIndent(safe, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
