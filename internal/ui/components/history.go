// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/thaitone/internal/session"
	"github.com/jeranaias/thaitone/internal/ui/styles"
	"github.com/jeranaias/thaitone/internal/util"
)

// History panel text.
const (
	HistoryTitle = "ประวัติล่าสุด"
	HistoryEmpty = "ยังไม่มีประวัติ"
)

// HistoryMax is the cap marker shown beside the title.
func HistoryMax(limit int) string {
	return fmt.Sprintf("MAX %d", limit)
}

// HistoryItem adapts a session.Result for the bubbles list.
type HistoryItem struct {
	Result session.Result
}

// FilterValue implements list.Item.
func (i HistoryItem) FilterValue() string { return i.Result.Original }

// HistoryItems converts results, most recent first.
func HistoryItems(results []session.Result) []list.Item {
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = HistoryItem{Result: r}
	}
	return items
}

// HistoryDelegate renders one two-line row per result: badge and original
// on the first line, the adjusted preview on the second.
type HistoryDelegate struct {
	theme *styles.Theme
}

// NewHistoryDelegate creates a delegate.
func NewHistoryDelegate(theme *styles.Theme) HistoryDelegate {
	return HistoryDelegate{theme: theme}
}

// Height implements list.ItemDelegate.
func (d HistoryDelegate) Height() int { return 2 }

// Spacing implements list.ItemDelegate.
func (d HistoryDelegate) Spacing() int { return 1 }

// Update implements list.ItemDelegate.
func (d HistoryDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate.
func (d HistoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(HistoryItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = lipgloss.NewStyle().Foreground(styles.Indigo).Render("▌ ")
	}

	width := m.Width() - 4
	if width < 10 {
		width = 10
	}

	badge := d.theme.ToneBadge(it.Result.Tone)
	first := util.Preview(it.Result.Original, width-lipgloss.Width(badge)-1)
	second := d.theme.Muted.Render(util.Preview(it.Result.Adjusted, width))

	fmt.Fprintf(w, "%s%s %s\n%s%s", cursor, badge, first, "  ", second)
}

// NewHistoryList creates the bubbles list used for history.
func NewHistoryList(theme *styles.Theme, width, height int) list.Model {
	l := list.New(nil, NewHistoryDelegate(theme), width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = theme.Muted
	l.SetStatusBarItemName("รายการ", "รายการ")
	return l
}
