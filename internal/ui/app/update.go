// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/thaitone/internal/session"
	"github.com/jeranaias/thaitone/internal/tone"
	"github.com/jeranaias/thaitone/internal/ui/components"
	"github.com/jeranaias/thaitone/internal/ui/styles"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StateMsg:
		if m.quitting {
			return m, nil
		}
		cmd := m.applyState(msg.State)
		return m, tea.Batch(cmd, m.relay.wait())

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.status = ReloadFailedStatus
			return m, nil
		}
		m.header.SetProvider(msg.Provider, msg.Model)
		m.status = ReloadedStatus
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.busy, cmd = m.busy.Update(msg)
		return m, cmd
	}

	return m.forward(msg)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.status = ""
		if !m.ctrl.Submit() && !m.state.Busy() {
			m.status = EmptyTextStatus
		}
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		m.status = ""
		m.ctrl.Retry()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if err := m.ctrl.Clear(); err == nil {
			m.status = ""
			m.focus = FocusText
			m.syncFocus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.status = ""
		if err := m.ctrl.Copy(); err != nil {
			if errors.Is(err, session.ErrNothingToCopy) {
				m.status = NothingToCopyStatus
			} else {
				log.Printf("app: copy failed: %v", err)
				m.status = CopyFailedStatus
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil

	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	switch m.focus {
	case FocusTone:
		return m.handleToneKey(msg)
	case FocusHistory:
		return m.handleHistoryKey(msg)
	}

	// Text inputs are read-only while a submission runs
	if m.state.Busy() {
		return m, nil
	}
	return m.forward(msg)
}

func (m Model) handleToneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.ToneLeft):
		m.ctrl.SelectTone(m.picker.Prev())
	case key.Matches(msg, m.keys.ToneRight):
		m.ctrl.SelectTone(m.picker.Next())
	case key.Matches(msg, m.keys.ToneJump):
		all := tone.All()
		i := int(msg.String()[0] - '1')
		if i >= 0 && i < len(all) {
			m.ctrl.SelectTone(all[i])
		}
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Replay):
		if len(m.history.Items()) == 0 {
			return m, nil
		}
		if err := m.ctrl.ReplayAt(m.history.Index()); err == nil {
			m.status = ""
			m.setFocus(FocusText)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// forward passes a message to the focused input and pushes edits into the
// controller.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusText:
		before := m.text.Value()
		m.text, cmd = m.text.Update(msg)
		if v := m.text.Value(); v != before {
			m.ctrl.SetText(v)
		}
	case FocusScenario:
		before := m.scenario.Value()
		m.scenario, cmd = m.scenario.Update(msg)
		if v := m.scenario.Value(); v != before {
			m.ctrl.SetScenario(v)
		}
	case FocusHistory:
		m.history, cmd = m.history.Update(msg)
	}
	return m, cmd
}

// =============================================================================
// STATE SYNC
// =============================================================================

// applyState mirrors a controller snapshot into the widgets. Stale
// snapshots are ignored.
func (m *Model) applyState(s session.State) tea.Cmd {
	if s.Version < m.state.Version {
		return nil
	}
	m.state = s

	if m.text.Value() != s.Text {
		m.text.SetValue(s.Text)
	}
	if m.scenario.Value() != s.Scenario {
		m.scenario.SetValue(s.Scenario)
	}

	m.picker.Selected = s.Tone
	m.picker.Disabled = s.Busy()

	m.busy.Percent = s.Progress
	m.busy.Countdown = s.Countdown
	m.errPanel.Message = s.Err

	m.result.SetContent(m.renderResultBody())
	m.result.GotoTop()

	m.syncFocus()
	return m.history.SetItems(components.HistoryItems(s.History))
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.syncFocus()
}

// syncFocus focuses the matching input. Inputs stay blurred while busy.
func (m *Model) syncFocus() {
	m.text.Blur()
	m.scenario.Blur()
	m.picker.Focused = m.focus == FocusTone

	if m.state.Busy() {
		return
	}
	switch m.focus {
	case FocusText:
		m.text.Focus()
	case FocusScenario:
		m.scenario.Focus()
	}
}

// =============================================================================
// LAYOUT
// =============================================================================

// mainWidth is the width of the editor column.
func (m Model) mainWidth() int {
	if m.theme.GetLayoutMode() == styles.LayoutWide {
		return m.width - historyColumnWidth - 2
	}
	return m.width
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	main := m.mainWidth()
	inner := main - 4
	if inner < 20 {
		inner = 20
	}

	m.header.SetWidth(width)
	m.picker.Width = main
	m.busy.SetWidth(main)
	m.errPanel.Width = main
	m.text.SetWidth(inner)
	m.scenario.Width = inner - 2
	m.help.Width = width

	// header + text panel + scenario panel + picker + action row + help
	used := lipgloss.Height(m.header.View()) + 8 + 4 + lipgloss.Height(m.picker.View()) + 3 + 2
	if m.theme.GetLayoutMode() == styles.LayoutWide {
		m.history.SetSize(historyColumnWidth, max(height-lipgloss.Height(m.header.View())-3, 4))
	} else {
		m.history.SetSize(width, narrowHistoryHeight)
		used += narrowHistoryHeight + 2
	}

	m.result.Width = inner
	m.result.Height = max(height-used-4, 3)
	m.result.SetContent(m.renderResultBody())
}
