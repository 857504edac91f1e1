// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual building blocks of the thaitone TUI.

Components are plain structs with setters and a View method. They hold no
session state of their own; the app model copies what they need out of a
session.State snapshot before rendering.

# Components

Header (header.go) - Brand, subtitle, provider badge and processing marker.
TonePicker (tonepicker.go) - Row of tone chips with the selected description.
BusyPanel (busy.go) - Spinner, progress bar and countdown while submitting.
ErrorPanel (error.go) - Localized failure message with a retry hint.
HistoryItem, HistoryDelegate (history.go) - Rows for the bubbles list of past results.
*/
package components
