// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// adjust.go - One-shot rewrite command.
//
// Command: adjust [flags] TEXT...
// Short:   Rewrite TEXT in a tone and print the result
// Aliases: a
//
// Examples:
//   thaitone adjust --tone professional "พรุ่งนี้ขอลาป่วยนะ"
//   echo "ขอโทษที่มาสาย" | thaitone adjust -t polite
//   thaitone adjust -t urgent -s "แจ้งลูกค้า" --json "ระบบล่ม"
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/thaitone/internal/config"
	"github.com/jeranaias/thaitone/internal/session"
	"github.com/jeranaias/thaitone/internal/tone"
)

// AdjustResult is the --json payload of the adjust command.
type AdjustResult struct {
	Tone     tone.Kind `json:"tone"`
	Original string    `json:"original"`
	Scenario string    `json:"scenario,omitempty"`
	Adjusted string    `json:"adjusted"`
	Provider string    `json:"provider"`
	Model    string    `json:"model"`
}

// HandleAdjust runs the adjust command. Text comes from the arguments, or
// from in when there are none and stdinIsTTY is false.
func HandleAdjust(ctx context.Context, cfg *config.Config, args Args, in io.Reader, stdinIsTTY bool, out io.Writer) error {
	client, err := NewAdjuster(cfg)
	if err != nil {
		return err
	}
	return runAdjust(ctx, client, cfg, args, in, stdinIsTTY, out)
}

func runAdjust(ctx context.Context, adjuster session.Adjuster, cfg *config.Config, args Args, in io.Reader, stdinIsTTY bool, out io.Writer) error {
	k, err := resolveTone(args.Tone, cfg)
	if err != nil {
		return err
	}

	text := args.Text
	if strings.TrimSpace(text) == "" && !stdinIsTTY && in != nil {
		data, err := io.ReadAll(io.LimitReader(in, 1<<20))
		if err != nil {
			return NewCommandError("adjust", "read", "could not read stdin", err)
		}
		text = string(data)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrMissingArgument("text", `thaitone adjust --tone polite "ข้อความ"`)
	}

	scenario := strings.TrimSpace(args.Scenario)
	adjusted, err := adjuster.Adjust(ctx, text, k, scenario)
	if err != nil {
		return err
	}

	switch {
	case args.JSON:
		return NewJSONResponse("adjust", AdjustResult{
			Tone:     k,
			Original: text,
			Scenario: scenario,
			Adjusted: adjusted,
			Provider: cfg.Provider.Name,
			Model:    cfg.Provider.Model,
		}).Write(out)

	case args.Quiet:
		_, err := fmt.Fprintln(out, adjusted)
		return err

	default:
		opt, _ := tone.Lookup(k)
		fmt.Fprintln(out, TitleStyle.Render(opt.Icon+" "+opt.Label))
		if scenario != "" {
			fmt.Fprintln(out, DimStyle.Render("สถานการณ์: "+scenario))
		}
		fmt.Fprintln(out)
		_, err := fmt.Fprintln(out, WrapText(adjusted, 0))
		return err
	}
}
