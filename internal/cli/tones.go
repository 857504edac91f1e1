// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tones.go - Tone catalog listing.
//
// Command: tones
// Short:   List the available tones
//
// Examples:
//   thaitone tones
//   thaitone tones --json
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/thaitone/internal/tone"
)

// HandleTones prints the tone catalog. A TTY gets a rendered markdown
// table; pipes get tab-separated columns.
func HandleTones(args Args, tty bool, out io.Writer) error {
	if args.JSON {
		return NewJSONResponse("tones", tone.Catalog()).Write(out)
	}
	if tty && !args.Quiet {
		fmt.Fprint(out, renderMarkdown(tonesMarkdown(), GetTerminalWidth()))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, opt := range tone.Catalog() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", opt.ID, opt.Label, opt.Description)
	}
	return tw.Flush()
}

// tonesMarkdown builds the catalog as a markdown table.
func tonesMarkdown() string {
	var b strings.Builder
	b.WriteString("# โทนภาษา\n\n")
	b.WriteString("| # | id | tone | |\n|---|---|---|---|\n")
	for i, opt := range tone.Catalog() {
		fmt.Fprintf(&b, "| %d | `%s` | %s %s | %s |\n", i+1, opt.ID, opt.Icon, opt.Label, opt.Description)
	}
	return b.String()
}

// renderMarkdown renders markdown for terminal display, returning the source
// unchanged if rendering fails.
func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
