// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for CLI commands.
//
// Commands return errors; the caller displays them and picks the exit code.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/thaitone/internal/adjust"
	"github.com/jeranaias/thaitone/internal/config"
	"github.com/jeranaias/thaitone/internal/ollama"
	"github.com/jeranaias/thaitone/internal/tone"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file, settings or credential error
	ExitConfigError = 3
	// ExitNetworkError indicates the provider could not be reached or failed
	ExitNetworkError = 5
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "adjust", "config")
	Action  string // Action being performed (e.g., "show", "init")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError represents invalid arguments.
type UsageError struct {
	Field   string
	Value   string
	Reason  string
	Example string
}

func (e *UsageError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{Command: command, Action: action, Reason: reason, Err: err}
}

// ErrMissingArgument creates an error for missing required arguments.
func ErrMissingArgument(name, example string) error {
	return &UsageError{Field: name, Reason: "required argument missing", Example: example}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode determines the exit code for err.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) || errors.Is(err, tone.ErrUnknownTone) {
		return ExitUsageError
	}

	var validationErr config.ValidationError
	var validationErrs config.ValidateErrors
	if errors.As(err, &validationErr) || errors.As(err, &validationErrs) || errors.Is(err, adjust.ErrConfiguration) {
		return ExitConfigError
	}

	if errors.Is(err, adjust.ErrService) || errors.Is(err, adjust.ErrEmptyResponse) {
		return ExitNetworkError
	}

	return ExitGeneralError
}

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError writes err in a consistent format. In JSON mode it writes a
// JSONResponse instead.
func DisplayError(w io.Writer, command string, err error, jsonMode bool) {
	if err == nil {
		return
	}
	if jsonMode {
		NewJSONErrorResponse(command, err).Write(w)
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
	if hint := errorHint(err); hint != "" {
		fmt.Fprintf(w, "%s %s\n", DimStyle.Render("hint:"), hint)
	}
}

// errorHint suggests a next step for errors the user can fix locally.
func errorHint(err error) string {
	switch {
	case ollama.IsNotRunning(err):
		return "start the local server with: ollama serve"
	case ollama.IsModelNotFound(err):
		return "pull the model first, or pick another with --model"
	case ollama.IsTimeout(err):
		return "raise provider.timeout_secs with: thaitone config set provider.timeout_secs 120"
	case errors.Is(err, adjust.ErrConfiguration):
		return "set GEMINI_API_KEY, or run: thaitone config set credentials.api_key <key>"
	}
	return ""
}
