// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"
	"time"

	"github.com/jeranaias/thaitone/internal/tone"
)

// ErrorMessage is the only failure text ever shown to the user.
const ErrorMessage = "เกิดข้อผิดพลาดในการปรับโทนภาษา กรุณาลองใหม่อีกครั้ง"

// =============================================================================
// PHASE
// =============================================================================

// Phase is the submission state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// =============================================================================
// RESULT
// =============================================================================

// Result is one successful adjustment. It is never modified after creation.
type Result struct {
	ID        string    `json:"id"`
	Original  string    `json:"original"`
	Scenario  string    `json:"scenario,omitempty"` // empty means no scenario was given
	Adjusted  string    `json:"adjusted"`
	Tone      tone.Kind `json:"tone"`
	CreatedAt time.Time `json:"created_at"`
}

// HasScenario reports whether the user supplied a scenario.
func (r Result) HasScenario() bool {
	return r.Scenario != ""
}

// =============================================================================
// STATE
// =============================================================================

// State is a snapshot of everything a surface needs to render a session.
type State struct {
	Phase    Phase
	Text     string
	Scenario string
	Tone     tone.Kind

	Last    *Result
	Err     string
	Copied  bool
	History []Result // most recent first

	Progress  float64 // 0..100
	Countdown int     // seconds left in the minimum display window

	// Version increases on every change.
	Version uint64
}

// Busy reports whether a submission is in flight.
func (s State) Busy() bool {
	return s.Phase == PhaseSubmitting
}

// CanSubmit reports whether a submission may start.
func (s State) CanSubmit() bool {
	return !s.Busy() && strings.TrimSpace(s.Text) != ""
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	if s.Last != nil {
		last := *s.Last
		out.Last = &last
	}
	if s.History != nil {
		out.History = make([]Result, len(s.History))
		copy(out.History, s.History)
	}
	return out
}

// =============================================================================
// EVENTS AND REDUCER
// =============================================================================

// Limits parameterizes the reducer.
type Limits struct {
	Steps      int // ticks in the minimum display window
	HistoryCap int
}

// Event is an input to Reduce.
type Event interface{ isEvent() }

type (
	TextEdited     struct{ Text string }
	ScenarioEdited struct{ Scenario string }
	ToneSelected   struct{ Tone tone.Kind }
	Submitted      struct{}
	Ticked         struct{}
	Succeeded      struct{ Result Result }
	Failed         struct{}
	Replayed       struct{ Result Result }
	Cleared        struct{}
	CopyStarted    struct{}
	CopyExpired    struct{}
)

func (TextEdited) isEvent()     {}
func (ScenarioEdited) isEvent() {}
func (ToneSelected) isEvent()   {}
func (Submitted) isEvent()      {}
func (Ticked) isEvent()         {}
func (Succeeded) isEvent()      {}
func (Failed) isEvent()         {}
func (Replayed) isEvent()       {}
func (Cleared) isEvent()        {}
func (CopyStarted) isEvent()    {}
func (CopyExpired) isEvent()    {}

// Reduce applies e to s and returns the new state. It has no side effects;
// events that are not allowed in the current phase return s unchanged.
func Reduce(s State, e Event, l Limits) State {
	next := s.Clone()

	switch e := e.(type) {
	case TextEdited:
		if s.Busy() {
			return s
		}
		next.Text = e.Text
		next.Phase = PhaseIdle

	case ScenarioEdited:
		if s.Busy() {
			return s
		}
		next.Scenario = e.Scenario
		next.Phase = PhaseIdle

	case ToneSelected:
		if s.Busy() || !e.Tone.Valid() {
			return s
		}
		next.Tone = e.Tone
		next.Phase = PhaseIdle

	case Submitted:
		if !s.CanSubmit() {
			return s
		}
		next.Phase = PhaseSubmitting
		next.Err = ""
		next.Copied = false
		next.Progress = 0
		next.Countdown = l.Steps

	case Ticked:
		if !s.Busy() {
			return s
		}
		if next.Countdown > 0 {
			next.Countdown--
		}
		next.Progress += 100 / float64(l.Steps)
		if next.Progress > 100-1e-9 {
			next.Progress = 100
		}

	case Succeeded:
		if !s.Busy() {
			return s
		}
		r := e.Result
		next.Last = &r
		next.History = prepend(s.History, r, l.HistoryCap)
		next.Phase = PhaseSucceeded
		next.Progress = 0
		next.Countdown = l.Steps

	case Failed:
		if !s.Busy() {
			return s
		}
		next.Err = ErrorMessage
		next.Phase = PhaseFailed
		next.Progress = 0
		next.Countdown = l.Steps

	case Replayed:
		if s.Busy() {
			return s
		}
		r := e.Result
		next.Text = r.Original
		next.Scenario = r.Scenario
		next.Tone = r.Tone
		next.Last = &r
		next.Phase = PhaseIdle

	case Cleared:
		if s.Busy() {
			return s
		}
		next.Text = ""
		next.Scenario = ""
		next.Last = nil
		next.Err = ""
		next.Copied = false
		next.Phase = PhaseIdle

	case CopyStarted:
		next.Copied = true

	case CopyExpired:
		if !s.Copied {
			return s
		}
		next.Copied = false

	default:
		return s
	}

	next.Version = s.Version + 1
	return next
}

// prepend returns a new history with r first, truncated to limit entries.
func prepend(history []Result, r Result, limit int) []Result {
	n := len(history) + 1
	if n > limit {
		n = limit
	}
	out := make([]Result, 0, n)
	out = append(out, r)
	for _, h := range history {
		if len(out) == n {
			break
		}
		out = append(out, h)
	}
	return out
}
