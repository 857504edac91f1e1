// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Line-mode session.
//
// Command: chat
// Short:   Rewrite text line by line in a terminal without the full-screen UI
//
// Examples:
//   thaitone chat
//   thaitone chat --tone casual
//
// Interactive Commands:
//   <text>              Rewrite the line in the selected tone
//   /tone [id|1-7]      Show or change the tone
//   /scenario [text]    Set the scenario; no text clears it
//   /retry              Submit the current text again
//   /history            List recent results
//   /use N              Restore history entry N
//   /copy               Copy the last result
//   /clear              Clear text, scenario and result
//   /help               Show commands
//   /quit               Exit (also Ctrl+D)
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/thaitone/internal/config"
	"github.com/jeranaias/thaitone/internal/session"
	"github.com/jeranaias/thaitone/internal/tone"
	"github.com/jeranaias/thaitone/internal/util"
)

const chatHelp = `Commands:
  <text>              rewrite the line in the selected tone
  /tone [id|1-7]      show or change the tone
  /scenario [text]    set the scenario; no text clears it
  /retry              submit the current text again
  /history            list recent results
  /use N              restore history entry N
  /copy               copy the last result
  /clear              clear text, scenario and result
  /help               show this help
  /quit               exit (also Ctrl+D)`

// =============================================================================
// INPUT
// =============================================================================

// ChatCLI provides line editing for interactive chat. Input history is
// kept in memory only.
type ChatCLI struct {
	line *liner.State
}

// NewChatCLI creates a ChatCLI.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &ChatCLI{line: line}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (c *ChatCLI) Close() {
	c.line.Close()
}

// =============================================================================
// SESSION
// =============================================================================

// chatSession drives a session.Controller from text commands.
type chatSession struct {
	ctrl  *session.Controller
	out   io.Writer
	width int

	signal      chan struct{}
	unsubscribe func()
}

func newChatSession(ctrl *session.Controller, out io.Writer, width int) *chatSession {
	s := &chatSession{
		ctrl:   ctrl,
		out:    out,
		width:  width,
		signal: make(chan struct{}, 1),
	}
	s.unsubscribe = ctrl.Subscribe(func(session.State) {
		select {
		case s.signal <- struct{}{}:
		default:
		}
	})
	return s
}

func (s *chatSession) close() {
	s.unsubscribe()
	s.ctrl.Close()
}

// HandleChat runs the line-mode session until /quit or EOF.
func HandleChat(cfg *config.Config, args Args) error {
	client, err := NewAdjuster(cfg)
	if err != nil {
		return err
	}

	ctrl := session.NewController(SessionConfig(cfg), client, nil)
	if args.Tone != "" {
		k, err := resolveTone(args.Tone, cfg)
		if err != nil {
			ctrl.Close()
			return err
		}
		ctrl.SelectTone(k)
	}

	s := newChatSession(ctrl, os.Stdout, GetTerminalWidth())
	defer s.close()

	input := NewChatCLI()
	defer input.Close()

	if !args.Quiet {
		fmt.Fprintln(s.out, TitleStyle.Render("Thai Tone Master")+DimStyle.Render(fmt.Sprintf("  %s · %s", cfg.Provider.Name, cfg.Provider.Model)))
		fmt.Fprintln(s.out, DimStyle.Render("พิมพ์ข้อความแล้วกด Enter · /help ดูคำสั่ง"))
	}

	for {
		line, err := input.ReadInput(s.prompt())
		if err != nil {
			// Ctrl+C, Ctrl+D or a closed stdin all end the session
			fmt.Fprintln(s.out)
			return nil
		}
		more, err := s.handleLine(line)
		if err != nil {
			fmt.Fprintf(s.out, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		}
		if !more {
			return nil
		}
	}
}

func (s *chatSession) prompt() string {
	st := s.ctrl.State()
	p := string(st.Tone)
	if st.Scenario != "" {
		p += "|" + util.TruncateWidth(st.Scenario, 16)
	}
	// liner measures the prompt itself, so it stays unstyled
	return p + "> "
}

// handleLine executes one input line. It returns false when the session
// should end.
func (s *chatSession) handleLine(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return true, nil
	}
	if !strings.HasPrefix(line, "/") {
		s.ctrl.SetText(line)
		return true, s.submit(s.ctrl.Submit())
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "/quit", "/q", "/exit":
		return false, nil

	case "/help", "/h", "/?":
		fmt.Fprintln(s.out, chatHelp)

	case "/tone", "/t":
		return true, s.tone(arg)

	case "/scenario", "/s":
		s.ctrl.SetScenario(arg)
		if arg == "" {
			fmt.Fprintln(s.out, DimStyle.Render("ล้างสถานการณ์แล้ว"))
		} else {
			fmt.Fprintln(s.out, DimStyle.Render("สถานการณ์: "+arg))
		}

	case "/retry", "/r":
		return true, s.submit(s.ctrl.Retry())

	case "/history":
		s.history()

	case "/use":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return true, &UsageError{Field: "index", Value: arg, Reason: "expected a number", Example: "/use 1"}
		}
		if err := s.ctrl.ReplayAt(n - 1); err != nil {
			return true, err
		}
		if last := s.ctrl.State().Last; last != nil {
			s.printResult(*last)
		}

	case "/copy", "/c":
		if err := s.ctrl.Copy(); err != nil {
			return true, err
		}
		fmt.Fprintln(s.out, SuccessStyle.Render("คัดลอกสำเร็จ"))

	case "/clear":
		if err := s.ctrl.Clear(); err != nil {
			return true, err
		}
		fmt.Fprintln(s.out, DimStyle.Render("ล้างข้อมูลแล้ว"))

	default:
		return true, &UsageError{Field: "command", Value: cmd, Reason: "unknown command", Example: "/help"}
	}
	return true, nil
}

func (s *chatSession) tone(arg string) error {
	if arg == "" {
		current := s.ctrl.State().Tone
		for i, opt := range tone.Catalog() {
			mark := "  "
			if opt.ID == current {
				mark = "> "
			}
			fmt.Fprintf(s.out, "%s%d %s %s  %s\n", mark, i+1, opt.Icon, opt.Label, DimStyle.Render(string(opt.ID)))
		}
		return nil
	}

	var k tone.Kind
	if n, err := strconv.Atoi(arg); err == nil {
		all := tone.All()
		if n < 1 || n > len(all) {
			return &UsageError{Field: "tone", Value: arg, Reason: fmt.Sprintf("expected 1-%d", len(all))}
		}
		k = all[n-1]
	} else {
		parsed, err := tone.Parse(arg)
		if err != nil {
			return err
		}
		k = parsed
	}

	s.ctrl.SelectTone(k)
	opt, _ := tone.Lookup(k)
	fmt.Fprintln(s.out, DimStyle.Render("โทน: "+opt.Icon+" "+opt.Label))
	return nil
}

func (s *chatSession) history() {
	h := s.ctrl.State().History
	if len(h) == 0 {
		fmt.Fprintln(s.out, DimStyle.Render("ยังไม่มีประวัติ"))
		return
	}
	for i, r := range h {
		opt, _ := tone.Lookup(r.Tone)
		fmt.Fprintf(s.out, "%2d. [%s] %s\n", i+1, opt.Badge(), util.Preview(r.Original, s.width-10))
	}
}

// submit waits for a submission started by the caller to settle and prints
// the outcome. started is what Submit or Retry returned.
func (s *chatSession) submit(started bool) error {
	if !started {
		if s.ctrl.State().Busy() {
			return session.ErrBusy
		}
		return errors.New("ไม่มีข้อความให้ปรับโทน")
	}

	st := s.wait(context.Background())
	if st.Err != "" {
		fmt.Fprintln(s.out, ErrorStyle.Render(st.Err))
		fmt.Fprintln(s.out, DimStyle.Render("พิมพ์ /retry เพื่อลองใหม่"))
		return nil
	}
	if st.Last != nil {
		s.printResult(*st.Last)
	}
	return nil
}

// wait blocks until the controller is no longer busy, printing the
// countdown as it changes.
func (s *chatSession) wait(ctx context.Context) session.State {
	countdown := -1
	for {
		st := s.ctrl.State()
		if !st.Busy() {
			if countdown >= 0 {
				fmt.Fprint(s.out, "\r\033[K")
			}
			return st
		}
		if st.Countdown != countdown {
			countdown = st.Countdown
			fmt.Fprint(s.out, "\r"+WarningStyle.Render(fmt.Sprintf("เหลืออีก %d วินาที", countdown)))
		}

		select {
		case <-s.signal:
		case <-time.After(250 * time.Millisecond):
		case <-ctx.Done():
			return st
		}
	}
}

func (s *chatSession) printResult(r session.Result) {
	opt, _ := tone.Lookup(r.Tone)
	header := TitleStyle.Render(opt.Icon + " " + opt.Label)
	if r.HasScenario() {
		header += DimStyle.Render("  สถานการณ์: " + r.Scenario)
	}
	fmt.Fprintln(s.out, header)
	fmt.Fprintln(s.out, WrapText(r.Adjusted, s.width))
	fmt.Fprintln(s.out)
}
