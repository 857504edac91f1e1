// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/thaitone/internal/ui/styles"
)

// CountdownText is the "N seconds left" line.
func CountdownText(seconds int) string {
	return fmt.Sprintf("เหลืออีก %d วินาที", seconds)
}

// BusyPanel shows progress while a submission is in flight.
type BusyPanel struct {
	Spinner   spinner.Model
	Progress  progress.Model
	Percent   float64 // 0..100
	Countdown int
	theme     *styles.Theme
}

// NewBusyPanel creates a busy panel.
func NewBusyPanel(theme *styles.Theme) BusyPanel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Amber)

	bar := progress.New(
		progress.WithGradient(styles.Indigo.Dark, styles.Violet.Dark),
		progress.WithoutPercentage(),
	)

	return BusyPanel{Spinner: sp, Progress: bar, theme: theme}
}

// SetWidth sizes the progress bar.
func (b *BusyPanel) SetWidth(width int) {
	w := width - 4
	if w < 10 {
		w = 10
	}
	b.Progress.Width = w
}

// Tick returns the spinner's first tick.
func (b BusyPanel) Tick() tea.Cmd {
	return b.Spinner.Tick
}

// Update advances the spinner.
func (b BusyPanel) Update(msg tea.Msg) (BusyPanel, tea.Cmd) {
	var cmd tea.Cmd
	b.Spinner, cmd = b.Spinner.Update(msg)
	return b, cmd
}

// View renders spinner, bar and countdown.
func (b BusyPanel) View() string {
	line := b.Spinner.View() + " " + b.theme.Countdown.Render(CountdownText(b.Countdown))
	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		b.Progress.ViewAs(b.Percent/100),
	)
}
