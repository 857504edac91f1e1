// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display the effective configuration (key redacted)
//   path                Show configuration file path
//   init                Write a default config file if none exists
//   get <key>           Print one value
//   set <key> <value>   Change one value in the config file
//
// Examples:
//   thaitone config
//   thaitone config show --json
//   thaitone config set provider.name ollama
//   thaitone config set session.default_tone professional
//   thaitone config get session.history_cap
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeranaias/thaitone/internal/config"
)

const redacted = "[REDACTED]"

// HandleConfig runs the config command. cfg is the effective configuration;
// path is the TOML file that init and set write to.
func HandleConfig(cfg *config.Config, path string, args Args, out io.Writer) error {
	switch args.Subcommand {
	case "", "show":
		return configShow(cfg, args, out)
	case "path":
		return configPath(path, args, out)
	case "init":
		return configInit(path, args, out)
	case "get":
		return configGet(cfg, args, out)
	case "set":
		return configSet(path, args, out)
	default:
		return &UsageError{
			Field:   "subcommand",
			Value:   args.Subcommand,
			Reason:  "unknown config subcommand",
			Example: "thaitone config [show|path|init|get KEY|set KEY VALUE]",
		}
	}
}

func configShow(cfg *config.Config, args Args, out io.Writer) error {
	safe := cfg.Clone()
	if safe.Credentials.APIKey != "" {
		safe.Credentials.APIKey = redacted
	}
	if args.JSON {
		return NewJSONResponse("config", safe).Write(out)
	}

	rows := []struct{ label, value string }{
		{"Provider", safe.Provider.Name},
		{"Model", safe.Provider.Model},
		{"Base URL", orDefault(safe.Provider.BaseURL)},
		{"Timeout", safe.Provider.Timeout().String()},
		{"API key", keyStatus(cfg)},
		{"Min duration", safe.Session.MinDuration().String()},
		{"History size", fmt.Sprint(safe.Session.HistoryCap)},
		{"Copy reset", safe.Session.CopyReset().String()},
		{"Default tone", safe.Session.DefaultTone},
		{"Rate limit", fmt.Sprintf("%d/min (burst %d)", safe.RateLimit.RequestsPerMinute, safe.RateLimit.Burst)},
		{"Theme", safe.UI.Theme},
	}

	fmt.Fprintln(out, TitleStyle.Render("thaitone configuration"))
	for _, r := range rows {
		fmt.Fprintln(out, LabelStyle.Render(r.label)+ValueStyle.Render(r.value))
	}
	return nil
}

func keyStatus(cfg *config.Config) string {
	switch {
	case !cfg.Provider.RequiresKey():
		return "not required"
	case config.EnvAPIKey() != "":
		return "set (environment)"
	case cfg.Credentials.APIKey != "":
		return "set (config file)"
	default:
		return ErrorStyle.Render("missing")
	}
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func configPath(path string, args Args, out io.Writer) error {
	if args.JSON {
		_, statErr := os.Stat(path)
		return NewJSONResponse("config", map[string]interface{}{
			"path":   path,
			"exists": statErr == nil,
		}).Write(out)
	}
	_, err := fmt.Fprintln(out, path)
	return err
}

func configInit(path string, args Args, out io.Writer) error {
	if _, err := os.Stat(path); err == nil {
		return NewCommandError("config", "init", "config file already exists at "+path, nil)
	}
	if err := config.SaveTOML(config.Default(), path); err != nil {
		return NewCommandError("config", "init", "could not write config", err)
	}
	if args.JSON {
		return NewJSONResponse("config", map[string]string{"path": path}).Write(out)
	}
	fmt.Fprintln(out, SuccessStyle.Render("[OK]")+" wrote "+path)
	return nil
}

func configGet(cfg *config.Config, args Args, out io.Writer) error {
	if args.ConfigKey == "" {
		return ErrMissingArgument("key", "thaitone config get provider.model")
	}
	v, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return &UsageError{Field: "key", Value: args.ConfigKey, Reason: err.Error(),
			Example: strings.Join(config.GetAllKeys(), ", ")}
	}
	if isSecretKey(args.ConfigKey) && fmt.Sprint(v) != "" {
		v = redacted
	}
	if args.JSON {
		return NewJSONResponse("config", map[string]interface{}{"key": args.ConfigKey, "value": v}).Write(out)
	}
	_, err = fmt.Fprintln(out, v)
	return err
}

// configSet edits the file contents only; environment overrides are not
// written back.
func configSet(path string, args Args, out io.Writer) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return ErrMissingArgument("key and value", "thaitone config set session.default_tone casual")
	}

	cfg := config.Default()
	if _, err := os.Stat(path); err == nil {
		if err := config.LoadTOML(cfg, path); err != nil {
			return NewCommandError("config", "set", "could not read "+path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return NewCommandError("config", "set", "could not read "+path, err)
	}

	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return &UsageError{Field: "key", Value: args.ConfigKey, Reason: err.Error()}
	}
	if strings.EqualFold(args.ConfigKey, "provider.name") {
		cfg.Provider.Model = ""
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.SaveTOML(cfg, path); err != nil {
		return NewCommandError("config", "set", "could not write config", err)
	}

	if !args.Quiet && !args.JSON {
		shown := args.ConfigVal
		if isSecretKey(args.ConfigKey) {
			shown = redacted
		}
		fmt.Fprintf(out, "%s %s = %s\n", SuccessStyle.Render("[OK]"), args.ConfigKey, shown)
	}
	if args.JSON {
		return NewJSONResponse("config", map[string]string{"key": args.ConfigKey}).Write(out)
	}
	return nil
}

func isSecretKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "api_key") || strings.Contains(k, "apikey")
}
