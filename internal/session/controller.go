// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/thaitone/internal/adjust"
	"github.com/jeranaias/thaitone/internal/tone"
)

// Session errors.
var (
	ErrBusy          = errors.New("session: a submission is in progress")
	ErrNotFound      = errors.New("session: history entry not found")
	ErrNothingToCopy = errors.New("session: no result to copy")
	ErrClosed        = errors.New("session: closed")
)

// Adjuster rewrites text into a tone. *adjust.Client satisfies it.
type Adjuster interface {
	Adjust(ctx context.Context, text string, k tone.Kind, scenario string) (string, error)
}

// AdjusterFunc adapts a function to Adjuster.
type AdjusterFunc func(ctx context.Context, text string, k tone.Kind, scenario string) (string, error)

// Adjust implements Adjuster.
func (f AdjusterFunc) Adjust(ctx context.Context, text string, k tone.Kind, scenario string) (string, error) {
	return f(ctx, text, k, scenario)
}

// =============================================================================
// CONFIG
// =============================================================================

// Config holds the timing and size parameters of a session.
type Config struct {
	// MinDuration is the shortest time a submission stays busy (default: 9s)
	MinDuration time.Duration

	// TickInterval is the progress/countdown update period (default: 1s)
	TickInterval time.Duration

	// Steps is the countdown start and the number of progress increments (default: 9)
	Steps int

	// CopyReset is how long the copied flag stays set (default: 2s)
	CopyReset time.Duration

	// HistoryCap bounds the history length (default: 10)
	HistoryCap int

	// DefaultTone is the tone selected when the session starts (default: polite)
	DefaultTone tone.Kind
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		MinDuration:  9 * time.Second,
		TickInterval: time.Second,
		Steps:        9,
		CopyReset:    2 * time.Second,
		HistoryCap:   10,
		DefaultTone:  tone.Default,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MinDuration < 0 {
		c.MinDuration = 0
	}
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.Steps <= 0 {
		c.Steps = d.Steps
	}
	if c.CopyReset <= 0 {
		c.CopyReset = d.CopyReset
	}
	if c.HistoryCap <= 0 {
		c.HistoryCap = d.HistoryCap
	}
	if !c.DefaultTone.Valid() {
		c.DefaultTone = d.DefaultTone
	}
	return c
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the state of one interactive session. Each view creates
// its own controller and closes it when the view goes away.
//
// All methods are safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	id        string
	cfg       Config
	adjuster  Adjuster
	clipboard Clipboard

	state  State
	closed bool

	// Submission tracking
	seq          uint64
	cancelTimers context.CancelFunc

	// Copy flag timer
	copyGen   uint64
	copyTimer *time.Timer

	// Subscribers
	notifyMu     sync.Mutex
	lastNotified uint64
	subs         map[int]func(State)
	nextSub      int

	wg sync.WaitGroup
}

// NewController creates a session. A nil clipboard uses the system clipboard.
func NewController(cfg Config, adjuster Adjuster, clipboard Clipboard) *Controller {
	cfg = cfg.normalized()
	if clipboard == nil {
		clipboard = SystemClipboard{}
	}
	return &Controller{
		id:        uuid.NewString(),
		cfg:       cfg,
		adjuster:  adjuster,
		clipboard: clipboard,
		state: State{
			Phase:     PhaseIdle,
			Tone:      cfg.DefaultTone,
			Countdown: cfg.Steps,
		},
		subs: make(map[int]func(State)),
	}
}

// ID returns the session identifier.
func (c *Controller) ID() string {
	return c.id
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Subscribe registers fn to receive every state change. fn runs outside the
// controller lock but must not call back into the controller synchronously.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.notifyMu.Lock()
		defer c.notifyMu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Controller) limits() Limits {
	return Limits{Steps: c.cfg.Steps, HistoryCap: c.cfg.HistoryCap}
}

// apply runs the reducer under c.mu and returns the snapshot to publish.
// The caller must hold c.mu.
func (c *Controller) apply(e Event) (State, bool) {
	next := Reduce(c.state, e, c.limits())
	if next.Version == c.state.Version {
		return State{}, false
	}
	c.state = next
	return next.Clone(), true
}

// notify delivers snap to subscribers, dropping snapshots older than one
// already delivered.
func (c *Controller) notify(snap State) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if snap.Version <= c.lastNotified {
		return
	}
	c.lastNotified = snap.Version
	for _, fn := range c.subs {
		fn(snap)
	}
}

// update applies e and notifies subscribers if anything changed.
func (c *Controller) update(e Event) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	snap, changed := c.apply(e)
	c.mu.Unlock()
	if changed {
		c.notify(snap)
	}
	return changed
}

// =============================================================================
// EDITING
// =============================================================================

// SetText replaces the input text. Ignored while submitting.
func (c *Controller) SetText(text string) {
	c.update(TextEdited{Text: text})
}

// SetScenario replaces the scenario text. Ignored while submitting.
func (c *Controller) SetScenario(scenario string) {
	c.update(ScenarioEdited{Scenario: scenario})
}

// SelectTone changes the selected tone. Ignored while submitting.
func (c *Controller) SelectTone(k tone.Kind) {
	c.update(ToneSelected{Tone: k})
}

// =============================================================================
// SUBMISSION
// =============================================================================

// Submit starts an adjustment of the current input. It returns false without
// doing anything when the input is blank or a submission is in flight.
//
// The submission stays busy until both the service call has returned and
// the minimum display duration has elapsed. A failed call ends it early.
func (c *Controller) Submit() bool {
	c.mu.Lock()
	if c.closed || !c.state.CanSubmit() {
		c.mu.Unlock()
		return false
	}
	snap, _ := c.apply(Submitted{})

	c.seq++
	seq := c.seq
	text := c.state.Text
	k := c.state.Tone
	scenario := strings.TrimSpace(c.state.Scenario)

	timersCtx, cancel := context.WithCancel(context.Background())
	c.cancelTimers = cancel

	c.wg.Add(2)
	c.mu.Unlock()

	c.notify(snap)

	go c.tick(timersCtx, seq)
	go c.run(timersCtx, seq, text, k, scenario)
	return true
}

// Retry re-submits the current inputs. Same guard as Submit.
func (c *Controller) Retry() bool {
	return c.Submit()
}

func (c *Controller) run(timersCtx context.Context, seq uint64, text string, k tone.Kind, scenario string) {
	defer c.wg.Done()

	var adjusted string
	g, gctx := errgroup.WithContext(timersCtx)

	g.Go(func() error {
		// The service call is never cancelled once issued.
		out, err := c.adjuster.Adjust(context.Background(), text, k, scenario)
		if err != nil {
			return err
		}
		adjusted = out
		return nil
	})

	g.Go(func() error {
		timer := time.NewTimer(c.cfg.MinDuration)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-gctx.Done():
		}
		return nil
	})

	err := g.Wait()
	c.finish(seq, Result{
		Original: text,
		Scenario: scenario,
		Adjusted: adjusted,
		Tone:     k,
	}, err)
}

func (c *Controller) finish(seq uint64, r Result, err error) {
	c.mu.Lock()
	if c.closed || seq != c.seq {
		c.mu.Unlock()
		return
	}
	if c.cancelTimers != nil {
		c.cancelTimers()
		c.cancelTimers = nil
	}

	var snap State
	if err != nil {
		log.Printf("session %s: adjust failed (%s): %v", c.id, adjust.Category(err), err)
		snap, _ = c.apply(Failed{})
	} else {
		r.ID = uuid.NewString()
		r.CreatedAt = time.Now()
		snap, _ = c.apply(Succeeded{Result: r})
	}
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Controller) tick(ctx context.Context, seq uint64) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.closed || seq != c.seq || !c.state.Busy() {
				c.mu.Unlock()
				return
			}
			if c.state.Countdown == 0 && c.state.Progress >= 100 {
				c.mu.Unlock()
				continue
			}
			snap, _ := c.apply(Ticked{})
			c.mu.Unlock()
			c.notify(snap)
		}
	}
}

// =============================================================================
// HISTORY, CLEAR, COPY
// =============================================================================

// Replay restores the history entry with the given id into the inputs and
// makes it the last result. No service call is made.
func (c *Controller) Replay(id string) error {
	return c.replay(func(h []Result) (Result, bool) {
		for _, r := range h {
			if r.ID == id {
				return r, true
			}
		}
		return Result{}, false
	})
}

// ReplayAt is Replay by history position (0 is the most recent).
func (c *Controller) ReplayAt(index int) error {
	return c.replay(func(h []Result) (Result, bool) {
		if index < 0 || index >= len(h) {
			return Result{}, false
		}
		return h[index], true
	})
}

func (c *Controller) replay(find func([]Result) (Result, bool)) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	r, ok := find(c.state.History)
	if !ok {
		c.mu.Unlock()
		return ErrNotFound
	}
	snap, changed := c.apply(Replayed{Result: r})
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
	return nil
}

// Clear empties text, scenario, last result and error. History is kept.
func (c *Controller) Clear() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	snap, changed := c.apply(Cleared{})
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
	return nil
}

// Copy writes the last adjusted text to the clipboard and raises the copied
// flag for CopyReset. Copying again restarts the window.
func (c *Controller) Copy() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Last == nil {
		c.mu.Unlock()
		return ErrNothingToCopy
	}
	text := c.state.Last.Adjusted
	c.mu.Unlock()

	if err := c.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.copyGen++
	gen := c.copyGen
	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}
	c.copyTimer = time.AfterFunc(c.cfg.CopyReset, func() { c.expireCopy(gen) })
	snap, changed := c.apply(CopyStarted{})
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
	return nil
}

func (c *Controller) expireCopy(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.copyGen {
		c.mu.Unlock()
		return
	}
	snap, changed := c.apply(CopyExpired{})
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Close tears the session down. Pending ticks and timers are cancelled and
// the outcome of an in-flight call is discarded; the call itself keeps
// running until the provider returns.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancelTimers != nil {
		c.cancelTimers()
		c.cancelTimers = nil
	}
	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}
}

// Wait blocks until background work of finished or cancelled submissions
// has returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}
