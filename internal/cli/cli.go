// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for thaitone.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAdjust
	CmdChat
	CmdTones
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdAdjust:
		return "adjust"
	case CmdChat:
		return "chat"
	case CmdTones:
		return "tones"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Provider string
	Model    string
	JSON     bool
	Quiet    bool
	Verbose  bool

	// Command-specific
	Tone       string
	Scenario   string
	Text       string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `thaitone - rewrite Thai text in a chosen tone

Usage:
  thaitone                         Start the full-screen editor (default)
  thaitone tui                     Same as above
  thaitone adjust [flags] TEXT...  Rewrite TEXT once and print the result
  thaitone chat [--tone T]         Line-mode session
  thaitone tones                   List available tones
  thaitone config [show|path|init|get KEY|set KEY VALUE]
  thaitone version                 Show version
  thaitone help                    Show this help

Adjust flags:
  -t, --tone TONE                  Tone id (default from config)
  -s, --scenario TEXT              Optional context for the rewrite
  TEXT is read from stdin when no arguments are given.

Global flags:
  --provider NAME                  gemini, openrouter or ollama
  --model NAME                     Model identifier
  --json                           JSON output
  -q, --quiet                      Print only the result
  -v, --verbose                    Log to stderr

Tones:
  professional polite casual friendly persuasive humorous urgent

Environment:
  THAITONE_API_KEY, GEMINI_API_KEY, API_KEY   API credential
  THAITONE_PROVIDER, THAITONE_MODEL, THAITONE_BASE_URL

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "thaitone version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go:         %s\n", runtime.Version())
}

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses args (without the program name) and returns the command.
func ParseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args
	case "adjust", "a":
		parseAdjustArgs(&args, remaining)
		return CmdAdjust, args
	case "chat":
		parseChatArgs(&args, remaining)
		return CmdChat, args
	case "tones", "tone":
		return CmdTones, args
	case "config":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args
	case "version", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		args.Raw = append([]string{cmd}, remaining...)
		return CmdUnknown, args
	}
}

// flagValue reports whether arg is name (taking the next element as value)
// or name=value.
func flagValue(argv []string, i *int, names ...string) (string, bool) {
	arg := argv[*i]
	for _, name := range names {
		if arg == name {
			if *i+1 < len(argv) {
				*i++
				return argv[*i], true
			}
			return "", true
		}
		if strings.HasPrefix(name, "--") && strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"="), true
		}
	}
	return "", false
}

func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		switch arg {
		case "-q", "--quiet":
			args.Quiet = true
			continue
		case "-v", "--verbose":
			args.Verbose = true
			continue
		case "--json":
			args.JSON = true
			continue
		}
		if v, ok := flagValue(argv, &i, "--provider"); ok {
			args.Provider = v
			continue
		}
		if v, ok := flagValue(argv, &i, "--model"); ok {
			args.Model = v
			continue
		}
		remaining = append(remaining, arg)
	}

	return remaining, args
}

// parseAdjustArgs parses adjust command specific arguments.
func parseAdjustArgs(args *Args, remaining []string) {
	var text []string

	for i := 0; i < len(remaining); i++ {
		if v, ok := flagValue(remaining, &i, "-t", "--tone"); ok {
			args.Tone = v
			continue
		}
		if v, ok := flagValue(remaining, &i, "-s", "--scenario"); ok {
			args.Scenario = v
			continue
		}
		if remaining[i] == "--" {
			text = append(text, remaining[i+1:]...)
			break
		}
		text = append(text, remaining[i])
	}

	args.Text = strings.Join(text, " ")
}

// parseChatArgs parses chat command specific arguments.
func parseChatArgs(args *Args, remaining []string) {
	for i := 0; i < len(remaining); i++ {
		if v, ok := flagValue(remaining, &i, "-t", "--tone"); ok {
			args.Tone = v
		}
	}
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) > 0 {
		args.Subcommand = strings.ToLower(remaining[0])
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			args.ConfigVal = strings.Join(remaining[2:], " ")
		}
	}
}
