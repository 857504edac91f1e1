// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/thaitone/internal/tone"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER
	// ==========================================================================

	HeaderBrand    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	ProviderBadge  lipgloss.Style
	ProcessingTag  lipgloss.Style

	// ==========================================================================
	// TONE PICKER
	// ==========================================================================

	Chip            lipgloss.Style
	ChipSelected    lipgloss.Style
	ChipDisabled    lipgloss.Style
	ToneDescription lipgloss.Style

	// ==========================================================================
	// INPUTS AND BUTTONS
	// ==========================================================================

	Label          lipgloss.Style
	Panel          lipgloss.Style
	PanelFocused   lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	// ==========================================================================
	// RESULT AND STATUS
	// ==========================================================================

	Result     lipgloss.Style
	Badge      lipgloss.Style
	ErrorPanel lipgloss.Style
	Countdown  lipgloss.Style
	Copied     lipgloss.Style
	CopyHint   lipgloss.Style

	// ==========================================================================
	// HISTORY
	// ==========================================================================

	HistoryTitle lipgloss.Style
	HistoryMax   lipgloss.Style

	Muted lipgloss.Style
}

// NewTheme creates a theme. mode is "dark", "light" or "auto"; auto asks the
// terminal for its background.
func NewTheme(mode string) *Theme {
	profile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: profile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	// Header
	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Indigo)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.ProviderBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Violet).
		Padding(0, 1)

	t.ProcessingTag = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	// Tone chips
	t.Chip = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ChipSelected = t.Chip.
		Bold(true).
		Foreground(Indigo).
		Background(IndigoDeep).
		BorderForeground(Indigo)

	t.ChipDisabled = t.Chip.
		Foreground(TextMuted).
		BorderForeground(Overlay)

	t.ToneDescription = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Inputs
	t.Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.PanelFocused = t.Panel.
		BorderForeground(Indigo)

	t.Button = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Indigo).
		Padding(0, 3)

	t.ButtonDisabled = t.Button.
		Foreground(TextMuted).
		Background(Overlay)

	// Result
	t.Result = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Violet).
		Padding(0, 1)

	t.Badge = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Padding(0, 1)

	t.ErrorPanel = lipgloss.NewStyle().
		Foreground(Rose).
		Background(RoseDeep).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Padding(0, 1)

	t.Countdown = lipgloss.NewStyle().
		Foreground(Amber)

	t.Copied = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.CopyHint = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// History
	t.HistoryTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.HistoryMax = lipgloss.NewStyle().
		Foreground(TextMuted).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// ToneBadge renders a small colored badge for a tone.
func (t *Theme) ToneBadge(k tone.Kind) string {
	opt, ok := tone.Lookup(k)
	label := string(k)
	if ok {
		label = opt.Badge()
	}
	return t.Badge.Background(ToneColor(k)).Render(label)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 70 {
		return LayoutNarrow
	}
	if t.Width < 110 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 70 columns: history below the editor
	LayoutMedium                   // 70-110 columns
	LayoutWide                     // > 110 columns: history beside the editor
)
