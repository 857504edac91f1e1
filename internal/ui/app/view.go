// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/thaitone/internal/ui/components"
	"github.com/jeranaias/thaitone/internal/ui/styles"
)

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	editor := lipgloss.JoinVertical(lipgloss.Left,
		m.renderText(),
		m.renderScenario(),
		m.picker.View(),
		m.renderAction(),
		m.renderOutcome(),
	)

	var body string
	if m.theme.GetLayoutMode() == styles.LayoutWide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, editor, "  ", m.renderHistory())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, editor, m.renderHistory())
	}

	parts := []string{m.header.View(), body}
	if m.status != "" {
		parts = append(parts, m.renderStatus())
	}
	parts = append(parts, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) panel(focused bool) lipgloss.Style {
	if focused {
		return m.theme.PanelFocused
	}
	return m.theme.Panel
}

func (m Model) renderText() string {
	label := m.theme.Label.Render(TextLabel)
	return lipgloss.JoinVertical(lipgloss.Left,
		label,
		m.panel(m.focus == FocusText).Render(m.text.View()),
	)
}

func (m Model) renderScenario() string {
	label := m.theme.Label.Render(ScenarioLabel)
	return lipgloss.JoinVertical(lipgloss.Left,
		label,
		m.panel(m.focus == FocusScenario).Render(m.scenario.View()),
	)
}

// renderAction shows the submit button, or progress while busy.
func (m Model) renderAction() string {
	if m.state.Busy() {
		return m.busy.View()
	}
	if m.state.CanSubmit() {
		return m.theme.Button.Render(SubmitLabel) + " " + m.theme.Muted.Render(m.keys.Submit.Help().Key)
	}
	return m.theme.ButtonDisabled.Render(SubmitLabel)
}

// renderOutcome shows the error panel, or the result when there is no error.
func (m Model) renderOutcome() string {
	if m.errPanel.Visible() {
		return m.errPanel.View()
	}
	if m.state.Last == nil {
		return ""
	}

	var copyLine string
	if m.state.Copied {
		copyLine = m.theme.Copied.Render(styles.StatusIndicators.Success + " " + CopiedLabel)
	} else {
		copyLine = m.theme.CopyHint.Render(CopyLabel + " (" + m.keys.Copy.Help().Key + ")")
	}
	top := m.theme.ToneBadge(m.state.Last.Tone) + "  " + copyLine

	w := m.result.Width + 2
	return m.theme.Result.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, top, m.result.View()))
}

// renderResultBody is the viewport content: the adjusted text and its
// scenario.
func (m Model) renderResultBody() string {
	if m.state.Last == nil {
		return ""
	}
	body := lipgloss.NewStyle().Width(m.result.Width).Render(m.state.Last.Adjusted)
	if m.state.Last.HasScenario() {
		body += "\n" + m.theme.Muted.Render("สถานการณ์: "+m.state.Last.Scenario)
	}
	return body
}

func (m Model) renderHistory() string {
	title := m.theme.HistoryTitle.Render(components.HistoryTitle) + " " +
		m.theme.HistoryMax.Render(components.HistoryMax(m.ctrl.Config().HistoryCap))

	var content string
	if len(m.state.History) == 0 {
		content = m.theme.Muted.Render(components.HistoryEmpty)
	} else {
		content = m.history.View()
	}
	return m.panel(m.focus == FocusHistory).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m Model) renderHelp() string {
	if m.showHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return strings.TrimRight(m.help.ShortHelpView(m.keys.ShortHelp()), " ")
}

func (m Model) renderStatus() string {
	switch m.status {
	case CopyFailedStatus, ReloadFailedStatus:
		return styles.RenderError(m.status)
	case NothingToCopyStatus, EmptyTextStatus:
		return m.theme.Muted.Render(m.status)
	default:
		return styles.RenderSuccess(m.status)
	}
}
