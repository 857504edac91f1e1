// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one tone-adjustment session.
//
// A Controller owns the input text, optional scenario, selected tone, the
// last result, the failure message and a bounded history. Every surface
// (the TUI and the line-mode chat) drives the same controller and renders
// the State snapshots it publishes.
//
// # Key Types
//
//   - Controller: mutable session with submission, replay and copy
//   - State: immutable snapshot for rendering
//   - Reduce: pure transition function over State
//
// # Usage
//
//	c := session.NewController(session.DefaultConfig(), client, nil)
//	defer c.Close()
//
//	unsub := c.Subscribe(func(s session.State) { ... })
//	defer unsub()
//
//	c.SetText("ส่งงานช้าหน่อยนะ")
//	c.SelectTone(tone.Polite)
//	c.Submit()
//
// # Timing
//
// A submission stays busy for at least Config.MinDuration even when the
// service answers sooner. A countdown and progress value advance once per
// TickInterval. A failed call ends the submission immediately.
package session
