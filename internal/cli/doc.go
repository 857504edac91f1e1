// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-TUI commands of
// thaitone.
//
// # Key Types
//
//   - Command: enumeration of the available commands
//   - Args: parsed global and command-specific flags
//   - CommandError, UsageError: structured command failures
//   - JSONResponse: envelope for --json output
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdAdjust:
//	    err = cli.HandleAdjust(ctx, cfg, args, os.Stdin, cli.IsTTY(), os.Stdout)
//	case cli.CmdChat:
//	    err = cli.HandleChat(cfg, args)
//	}
//	os.Exit(cli.GetExitCode(err))
//
// NewAdjuster and SessionConfig turn a config.Config into the adjustment
// client and controller settings shared by the TUI and the line-mode chat.
//
// # Exit Codes
//
//	0  success
//	1  general error
//	2  usage error (bad flag, unknown tone)
//	3  configuration error (invalid config, missing API key)
//	5  provider error (network, service, empty response)
package cli
