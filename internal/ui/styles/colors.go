// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the thaitone TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/thaitone/internal/tone"
)

// =============================================================================
// BRAND COLORS
// =============================================================================

// Indigo - Primary accent, selected tone, focused borders
var Indigo = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

// IndigoDeep - Background of the selected tone chip
var IndigoDeep = lipgloss.AdaptiveColor{Light: "#E0E7FF", Dark: "#312E81"}

// Violet - Brand gradient partner, result badge
var Violet = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Emerald - Copy confirmation, ready states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Error panel
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// RoseDeep - Error panel background
var RoseDeep = lipgloss.AdaptiveColor{Light: "#FFE4E6", Dark: "#4C0519"}

// Amber - Countdown and busy indicators
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE AND TEXT
// =============================================================================

var (
	Surface     = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
	SurfaceDim  = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#181825"}
	Overlay     = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#313244"}
	OverlayDim  = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#45475A"}
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1E293B", Dark: "#CDD6F4"}
	TextMuted   = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#6C7086"}
	TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
)

// TextSecondary - Labels, descriptions
var TextSecondary = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#A6ADC8"}

// =============================================================================
// TONE ACCENTS
// =============================================================================

// toneColors gives each tone chip its own accent.
var toneColors = map[tone.Kind]lipgloss.AdaptiveColor{
	tone.Professional: {Light: "#1D4ED8", Dark: "#93C5FD"},
	tone.Polite:       {Light: "#7C3AED", Dark: "#C4B5FD"},
	tone.Casual:       {Light: "#0891B2", Dark: "#67E8F9"},
	tone.Friendly:     {Light: "#DB2777", Dark: "#F9A8D4"},
	tone.Persuasive:   {Light: "#475569", Dark: "#CBD5E1"},
	tone.Humorous:     {Light: "#CA8A04", Dark: "#FDE047"},
	tone.Urgent:       {Light: "#DC2626", Dark: "#FCA5A5"},
}

// ToneColor returns the accent color of a tone, Indigo for unknown tones.
func ToneColor(k tone.Kind) lipgloss.AdaptiveColor {
	if c, ok := toneColors[k]; ok {
		return c
	}
	return Indigo
}

// =============================================================================
// STATUS HELPERS
// =============================================================================

// StatusIndicators are ASCII shapes shown next to colored status text.
var StatusIndicators = struct {
	Success string
	Error   string
	Pending string
}{
	Success: "[OK]",
	Error:   "[X]",
	Pending: "[ ]",
}

// RenderSuccess renders a success message with its indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().Foreground(Emerald).Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its indicator.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).
		Render(StatusIndicators.Error + " " + message)
}
