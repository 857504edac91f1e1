// thaitone - rewrite Thai text in a chosen tone, from the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/thaitone/internal/cli"
	"github.com/jeranaias/thaitone/internal/config"
	"github.com/jeranaias/thaitone/internal/session"
	"github.com/jeranaias/thaitone/internal/ui/app"
	"github.com/jeranaias/thaitone/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	// Commands that need no configuration
	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		return
	case cli.CmdUnknown:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args.Raw[0])
		cli.PrintUsage(os.Stderr)
		os.Exit(cli.ExitUsageError)
	case cli.CmdTones:
		exit(cmd, args, cli.HandleTones(args, cli.IsStdoutTTY(), os.Stdout))
		return
	}

	if cmd != cli.CmdTUI {
		if args.Verbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}
	}

	cfg, err := config.Load()
	if cfg == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitConfigError)
	}
	if err != nil && !args.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if err := cli.ApplyFlags(cfg, args); err != nil {
		exit(cmd, args, err)
	}
	config.SetGlobal(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case cli.CmdAdjust:
		err = cli.HandleAdjust(ctx, cfg, args, os.Stdin, cli.IsTTY(), os.Stdout)
	case cli.CmdChat:
		err = cli.HandleChat(cfg, args)
	case cli.CmdConfig:
		path, perr := config.ConfigPathTOML()
		if perr != nil {
			exit(cmd, args, perr)
		}
		err = cli.HandleConfig(cfg, path, args, os.Stdout)
	default:
		err = runTUI(ctx, cfg, args)
	}
	exit(cmd, args, err)
}

// exit reports err and terminates with its exit code.
func exit(cmd cli.Command, args cli.Args, err error) {
	if err == nil {
		return
	}
	cli.DisplayError(os.Stderr, cmd.String(), err, args.JSON)
	os.Exit(cli.GetExitCode(err))
}

// runTUI starts the full-screen editor.
func runTUI(ctx context.Context, cfg *config.Config, args cli.Args) error {
	// The alternate screen owns the terminal; logs go to a file
	log.SetOutput(io.Discard)
	if logPath, err := config.LogPath(); err == nil && config.EnsureConfigDir() == nil {
		if f, err := tea.LogToFile(logPath, "thaitone"); err == nil {
			defer f.Close()
		}
	}

	adjuster, err := cli.NewReloadable(cfg, args)
	if err != nil {
		return err
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	ctrl := session.NewController(cli.SessionConfig(cfg), adjuster, nil)
	log.Printf("session %s started (provider=%s model=%s)", ctrl.ID(), cfg.Provider.Name, cfg.Provider.Model)

	m := app.New(ctrl, theme, cfg.Provider.Name, cfg.Provider.Model).WithHelp(cfg.UI.ShowHelp)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	// Edits to the config file switch the provider, model and API key used
	// by the next call.
	if path, err := config.ConfigPathTOML(); err == nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		err := config.Watch(watchCtx, path, 0, func(next *config.Config, err error) error {
			if err == nil {
				err = adjuster.Reload(next)
			}
			if err != nil {
				p.Send(app.ConfigReloadedMsg{Err: err})
				return err
			}
			c := adjuster.Client()
			p.Send(app.ConfigReloadedMsg{Provider: c.Provider(), Model: c.Model()})
			return nil
		})
		if err != nil {
			log.Printf("config: watch disabled: %v", err)
		}
	}

	_, err = p.Run()
	ctrl.Close()
	log.Printf("session %s ended", ctrl.ID())
	if err != nil && err != tea.ErrProgramKilled {
		return fmt.Errorf("running thaitone: %w", err)
	}
	return nil
}
