// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the tone editor.
type KeyMap struct {
	Submit    key.Binding
	Retry     key.Binding
	Clear     key.Binding
	Copy      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	ToneLeft  key.Binding
	ToneRight key.Binding
	ToneJump  key.Binding
	Replay    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "ปรับโทน"),
		),
		Retry: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "ลองใหม่"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "ล้าง"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "คัดลอก"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous field"),
		),
		ToneLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous tone"),
		),
		ToneRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next tone"),
		),
		ToneJump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "pick tone"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "use history entry"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Copy, k.NextFocus, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Actions
		{k.Submit, k.Retry, k.Clear, k.Copy},
		// Navigation
		{k.NextFocus, k.PrevFocus, k.Replay},
		// Tone
		{k.ToneLeft, k.ToneRight, k.ToneJump},
		// General
		{k.Help, k.Quit},
	}
}
