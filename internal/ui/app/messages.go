// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/thaitone/internal/session"
)

// StateMsg carries a session snapshot into the update loop.
type StateMsg struct {
	State session.State
}

// ConfigReloadedMsg reports that the config file changed on disk.
type ConfigReloadedMsg struct {
	Provider string
	Model    string
	Err      error
}

// relay hands the latest snapshot from controller goroutines to the
// program. Intermediate snapshots may be skipped; the latest never is.
type relay struct {
	mu     sync.Mutex
	latest session.State
	has    bool
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newRelay() *relay {
	return &relay{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// push is the session subscriber. It never blocks.
func (r *relay) push(s session.State) {
	r.mu.Lock()
	if !r.has || s.Version > r.latest.Version {
		r.latest = s
		r.has = true
	}
	r.mu.Unlock()

	select {
	case r.signal <- struct{}{}:
	default:
	}
}

func (r *relay) close() {
	r.once.Do(func() { close(r.done) })
}

// wait returns a command that resolves with the next snapshot.
func (r *relay) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-r.signal:
		case <-r.done:
			return nil
		}
		r.mu.Lock()
		s := r.latest
		r.mu.Unlock()
		return StateMsg{State: s}
	}
}
