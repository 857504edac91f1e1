// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/thaitone/internal/tone"
	"github.com/jeranaias/thaitone/internal/ui/styles"
)

// TonePicker renders the seven tone chips.
type TonePicker struct {
	Selected tone.Kind
	Disabled bool
	Focused  bool
	Width    int
	theme    *styles.Theme
}

// NewTonePicker creates a picker with the default tone selected.
func NewTonePicker(theme *styles.Theme) *TonePicker {
	return &TonePicker{Selected: tone.Default, Width: 80, theme: theme}
}

// Next returns the tone after the selected one, wrapping around.
func (p *TonePicker) Next() tone.Kind {
	return p.offset(1)
}

// Prev returns the tone before the selected one, wrapping around.
func (p *TonePicker) Prev() tone.Kind {
	return p.offset(-1)
}

func (p *TonePicker) offset(d int) tone.Kind {
	all := tone.All()
	i := tone.Index(p.Selected)
	if i < 0 {
		return all[0]
	}
	return all[(i+d+len(all))%len(all)]
}

// View renders the chips, wrapping to more rows when the width is short,
// followed by the description of the selected tone.
func (p *TonePicker) View() string {
	var rows []string
	var row []string
	rowWidth := 0

	for i, opt := range tone.Catalog() {
		style := p.theme.Chip
		switch {
		case p.Disabled:
			style = p.theme.ChipDisabled
		case opt.ID == p.Selected:
			style = p.theme.ChipSelected
			if p.Focused {
				style = style.BorderForeground(styles.ToneColor(opt.ID))
			}
		}
		chip := style.Render(shortcut(i) + " " + opt.Icon + " " + opt.Label)

		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+w > p.Width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	if opt, ok := tone.Lookup(p.Selected); ok {
		rows = append(rows, p.theme.ToneDescription.Render(opt.Icon+" "+opt.Description))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func shortcut(i int) string {
	return string(rune('1' + i))
}
