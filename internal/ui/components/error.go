// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/thaitone/internal/ui/styles"
)

// RetryHint is shown under a failure message.
const RetryHint = "กด ctrl+r เพื่อลองใหม่"

// ErrorPanel renders a failure message. It takes priority over any result.
type ErrorPanel struct {
	Message string
	Width   int
	theme   *styles.Theme
}

// NewErrorPanel creates an error panel.
func NewErrorPanel(theme *styles.Theme) *ErrorPanel {
	return &ErrorPanel{Width: 80, theme: theme}
}

// Visible reports whether there is a message to show.
func (e *ErrorPanel) Visible() bool {
	return e.Message != ""
}

// View renders the panel, or "" when there is no message.
func (e *ErrorPanel) View() string {
	if !e.Visible() {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.StatusIndicators.Error+" "+e.Message,
		e.theme.Muted.Render(RetryHint),
	)
	w := e.Width - 2
	if w < 20 {
		w = 20
	}
	return e.theme.ErrorPanel.Width(w).Render(body)
}
