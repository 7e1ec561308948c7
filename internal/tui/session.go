// Package tui runs the interactive command session, either as a plain
// line-oriented loop or as a Bubble Tea terminal UI.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/hollis-dev/rolodex/internal/engine"
)

// Terminal decoration. Feedback strings from the engine carry semantic
// content only; the session applies the prefix and dividers.
const (
	LinePrefix = "|| "
	Divider    = "==================================================="
)

// commentMarker starts an input line that is silently ignored.
const commentMarker = "#"

// Executor runs one command line and returns the feedback to display.
// Implemented by *engine.Engine.
type Executor interface {
	Execute(line string) (string, error)
}

// Session drives the read-execute-display loop until exit or a fatal error.
type Session interface {
	Run() error
}

// Options configures session creation.
type Options struct {
	Input      io.Reader // Command source (default: os.Stdin).
	Output     io.Writer // Display destination (default: os.Stdout).
	Executor   Executor  // Command executor (required).
	Version    string    // Shown in the welcome banner.
	ForcePlain bool      // Force the plain session even if Output is a TTY.
}

// NewSession returns a Bubble Tea session when output is a TTY, or the
// plain line-oriented session otherwise. ForcePlain overrides TTY
// detection; piped input always gets the plain session.
func NewSession(opts Options) Session {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Output) || !isTTY(opts.Input) {
		return &PlainSession{in: opts.Input, out: opts.Output, exec: opts.Executor, version: opts.Version}
	}

	return &TUISession{in: opts.Input, out: opts.Output, exec: opts.Executor, version: opts.Version}
}

// isTTY reports whether v is connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Show writes each message to w as a decorated terminal line.
// Multi-line messages are decorated line by line.
func Show(w io.Writer, messages ...string) {
	for _, m := range messages {
		for _, line := range strings.Split(m, "\n") {
			_, _ = fmt.Fprintf(w, "%s%s\n", LinePrefix, line)
		}
	}
}

// PlainSession is the canonical line-oriented loop: prompt, read one
// non-blank non-comment line, echo it, execute, display feedback.
type PlainSession struct {
	in      io.Reader
	out     io.Writer
	exec    Executor
	version string
}

// Run loops until the user exits, input is exhausted, or a command
// fails fatally. An exhausted input (EOF) is a normal return.
func (s *PlainSession) Run() error {
	Show(s.out, Divider, Divider, s.version, msgWelcome, Divider)

	scanner := bufio.NewScanner(s.in)
	for {
		_, _ = fmt.Fprintf(s.out, "%sEnter command: ", LinePrefix)

		line, ok := nextCommand(scanner)
		if !ok {
			return scanner.Err()
		}

		Show(s.out, fmt.Sprintf(msgEchoFormat, line))

		feedback, err := s.exec.Execute(line)
		if errors.Is(err, engine.ErrExitRequested) {
			Show(s.out, msgGoodbye, Divider, Divider)
			return nil
		}
		if err != nil {
			return err
		}
		Show(s.out, feedback, Divider)
	}
}

// nextCommand reads lines until one is neither blank nor a comment,
// consuming the skipped lines silently.
func nextCommand(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		return line, true
	}
	return "", false
}

// Session-level messages (the engine owns per-command feedback).
const (
	msgWelcome    = "Welcome to your Address Book!"
	msgGoodbye    = "Exiting Address Book... Good bye!"
	msgEchoFormat = "[Command entered: %s]"
)
