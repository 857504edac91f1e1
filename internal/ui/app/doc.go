// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package app is the full-screen tone editor.

The Model is a Bubble Tea program over a session.Controller. Keystrokes
become controller calls (SetText, SelectTone, Submit, Copy, Replay) and
controller snapshots come back as StateMsg values through a small relay, so
the controller never blocks on the UI.

# Layout

  - Header with the brand, provider badge and processing mark
  - Original text (textarea) and optional scenario (textinput)
  - Tone chips; 1-7 or arrows select when the chips are focused
  - Submit button, replaced by spinner, countdown and progress while busy
  - Error panel, or the latest result with its tone badge and copy state
  - Recent history (bubbles list); Enter restores an entry

Wide terminals put history in a side column. Tab cycles focus.
*/
package app
