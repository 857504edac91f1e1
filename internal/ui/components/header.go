// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/thaitone/internal/ui/styles"
)

// Header text.
const (
	Brand          = "Thai Tone Master"
	Subtitle       = "ปรับโทนภาษาไทยให้เหมาะกับทุกสถานการณ์"
	ProcessingMark = "9s Processing Enabled"
)

// Header is the title bar.
type Header struct {
	Provider string
	Model    string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a Header.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{Width: 80, theme: theme}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetProvider updates the provider badge.
func (h *Header) SetProvider(provider, model string) {
	h.Provider = provider
	h.Model = model
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	left := h.theme.HeaderBrand.Render(Brand) + "  " + h.theme.HeaderSubtitle.Render(Subtitle)

	var badges []string
	if h.Provider != "" {
		label := h.Provider
		if h.Model != "" {
			label += " · " + h.Model
		}
		badges = append(badges, h.theme.ProviderBadge.Render(label))
	}
	badges = append(badges, h.theme.ProcessingTag.Render(ProcessingMark))
	right := strings.Join(badges, " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough room on one line
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return left + strings.Repeat(" ", gap) + right
}
