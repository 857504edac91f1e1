// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles defines colors and lipgloss styles for the TUI.
//
// Colors are AdaptiveColor values so the same palette works on dark and
// light terminals. Theme bundles the styles and the responsive layout mode:
//
//	theme := styles.NewTheme(cfg.UI.Theme)
//	theme.SetSize(msg.Width, msg.Height)
//	chip := theme.ChipSelected.Render("🙏 สุภาพ (Polite)")
package styles
