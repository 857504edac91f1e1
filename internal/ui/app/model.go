// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/thaitone/internal/session"
	"github.com/jeranaias/thaitone/internal/ui/components"
	"github.com/jeranaias/thaitone/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus identifies the section receiving keys.
type Focus int

const (
	FocusText Focus = iota
	FocusScenario
	FocusTone
	FocusHistory
	focusCount
)

// String returns the focus name.
func (f Focus) String() string {
	switch f {
	case FocusText:
		return "text"
	case FocusScenario:
		return "scenario"
	case FocusTone:
		return "tone"
	case FocusHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Placeholders and labels.
const (
	TextLabel           = "ข้อความต้นฉบับ"
	TextPlaceholder     = "พิมพ์ข้อความภาษาไทยที่ต้องการปรับโทน..."
	ScenarioLabel       = "สถานการณ์ (ไม่บังคับ)"
	ScenarioPlaceholder = "เช่น ส่งอีเมลถึงหัวหน้า, ตอบลูกค้า"
	SubmitLabel         = "ปรับโทนภาษา"
	CopiedLabel         = "คัดลอกสำเร็จ"
	CopyLabel           = "คัดลอกข้อความ"
	EmptyTextStatus     = "กรุณาพิมพ์ข้อความก่อน"
	NothingToCopyStatus = "ยังไม่มีผลลัพธ์ให้คัดลอก"
	CopyFailedStatus    = "คัดลอกไม่สำเร็จ"
	ReloadFailedStatus  = "โหลดการตั้งค่าใหม่ไม่สำเร็จ"
	ReloadedStatus      = "โหลดการตั้งค่าใหม่แล้ว"
	maxTextRunes        = 5000
	maxScenarioRunes    = 300
	historyColumnWidth  = 40
	narrowHistoryHeight = 9
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the tone editor screen. All session state lives in the
// controller; the model mirrors the latest snapshot and forwards input.
type Model struct {
	ctrl        *session.Controller
	relay       *relay
	unsubscribe func()

	theme    *styles.Theme
	keys     KeyMap
	header   *components.Header
	picker   *components.TonePicker
	busy     components.BusyPanel
	errPanel *components.ErrorPanel
	history  list.Model
	text     textarea.Model
	scenario textinput.Model
	result   viewport.Model
	help     help.Model

	focus    Focus
	state    session.State
	width    int
	height   int
	showHelp bool
	status   string
	quitting bool
}

// New creates the editor bound to ctrl. provider and model fill the header
// badge.
func New(ctrl *session.Controller, theme *styles.Theme, provider, model string) Model {
	ta := textarea.New()
	ta.Placeholder = TextPlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = maxTextRunes
	ta.SetHeight(5)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = ScenarioPlaceholder
	ti.CharLimit = maxScenarioRunes
	ti.Prompt = "› "

	header := components.NewHeader(theme)
	header.SetProvider(provider, model)

	m := Model{
		ctrl:     ctrl,
		relay:    newRelay(),
		theme:    theme,
		keys:     DefaultKeyMap(),
		header:   header,
		picker:   components.NewTonePicker(theme),
		busy:     components.NewBusyPanel(theme),
		errPanel: components.NewErrorPanel(theme),
		history:  components.NewHistoryList(theme, historyColumnWidth, narrowHistoryHeight),
		text:     ta,
		scenario: ti,
		result:   viewport.New(60, 5),
		help:     help.New(),
		focus:    FocusText,
	}
	m.unsubscribe = ctrl.Subscribe(m.relay.push)
	m.applyState(ctrl.State())
	m.resize(80, 30)
	return m
}

// WithHelp sets whether the full key help is shown at start.
func (m Model) WithHelp(show bool) Model {
	m.showHelp = show
	return m
}

// Focus returns the focused section.
func (m Model) Focus() Focus {
	return m.focus
}

// State returns the last snapshot the model rendered.
func (m Model) State() session.State {
	return m.state
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Init starts the spinner, the cursor blink and the snapshot relay.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.busy.Tick(), m.relay.wait())
}

// shutdown detaches from the controller. Any in-flight result is dropped.
func (m *Model) shutdown() {
	if m.quitting {
		return
	}
	m.quitting = true
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.relay.close()
	m.ctrl.Close()
}
