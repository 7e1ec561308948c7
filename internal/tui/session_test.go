package tui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/hollis-dev/rolodex/internal/engine"
)

// stubExec is a scripted Executor that records every executed line.
type stubExec struct {
	executed []string
	fn       func(line string) (string, error)
}

func (s *stubExec) Execute(line string) (string, error) {
	s.executed = append(s.executed, line)
	if s.fn != nil {
		return s.fn(line)
	}
	return "FEEDBACK: " + line, nil
}

func exitOn(word string) func(string) (string, error) {
	return func(line string) (string, error) {
		if line == word {
			return "", engine.ErrExitRequested
		}
		return "FEEDBACK: " + line, nil
	}
}

// --- isTTY ---

func TestIsTTY_NonFileWriter(t *testing.T) {
	var buf bytes.Buffer
	if isTTY(&buf) {
		t.Error("non-*os.File writer should not be a TTY")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if isTTY(f) {
		t.Error("regular file should not be a TTY")
	}
}

// --- NewSession ---

func TestNewSession_NonTTYGetsPlainSession(t *testing.T) {
	s := NewSession(Options{
		Input:    strings.NewReader(""),
		Output:   &bytes.Buffer{},
		Executor: &stubExec{},
	})
	if _, ok := s.(*PlainSession); !ok {
		t.Errorf("session type = %T, want *PlainSession for non-TTY streams", s)
	}
}

func TestNewSession_ForcePlain(t *testing.T) {
	s := NewSession(Options{
		Input:      strings.NewReader(""),
		Output:     &bytes.Buffer{},
		Executor:   &stubExec{},
		ForcePlain: true,
	})
	if _, ok := s.(*PlainSession); !ok {
		t.Errorf("session type = %T, want *PlainSession when forced", s)
	}
}

// --- Show ---

func TestShow_PrefixesEachLine(t *testing.T) {
	var buf bytes.Buffer

	Show(&buf, "first\nsecond", "third")

	want := "|| first\n|| second\n|| third\n"
	if buf.String() != want {
		t.Errorf("Show() output = %q, want %q", buf.String(), want)
	}
}

// --- PlainSession ---

func TestPlainSession_Transcript(t *testing.T) {
	var buf bytes.Buffer
	s := &PlainSession{
		in:      strings.NewReader("hello\nexit\n"),
		out:     &buf,
		exec:    &stubExec{fn: exitOn("exit")},
		version: "Test App - Version 1.0",
	}

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := strings.Join([]string{
		"|| " + Divider,
		"|| " + Divider,
		"|| Test App - Version 1.0",
		"|| Welcome to your Address Book!",
		"|| " + Divider,
		"|| Enter command: || [Command entered: hello]",
		"|| FEEDBACK: hello",
		"|| " + Divider,
		"|| Enter command: || [Command entered: exit]",
		"|| Exiting Address Book... Good bye!",
		"|| " + Divider,
		"|| " + Divider,
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("transcript mismatch\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPlainSession_SkipsBlankAndCommentLines(t *testing.T) {
	var buf bytes.Buffer
	exec := &stubExec{fn: exitOn("exit")}
	s := &PlainSession{
		in:   strings.NewReader("\n   \n# a comment\nlist\n# another\nexit\n"),
		out:  &buf,
		exec: exec,
	}

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Only the real commands reach the executor, with no echo for the rest.
	if len(exec.executed) != 2 || exec.executed[0] != "list" || exec.executed[1] != "exit" {
		t.Errorf("executed = %v, want [list exit]", exec.executed)
	}
	if strings.Contains(buf.String(), "comment") {
		t.Error("comment lines must not be echoed")
	}
}

func TestPlainSession_TrimsInputLines(t *testing.T) {
	var buf bytes.Buffer
	exec := &stubExec{fn: exitOn("exit")}
	s := &PlainSession{
		in:   strings.NewReader("   list   \nexit\n"),
		out:  &buf,
		exec: exec,
	}

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if exec.executed[0] != "list" {
		t.Errorf("executed[0] = %q, want trimmed %q", exec.executed[0], "list")
	}
}

func TestPlainSession_EOFEndsSession(t *testing.T) {
	var buf bytes.Buffer
	s := &PlainSession{
		in:   strings.NewReader("list\n"),
		out:  &buf,
		exec: &stubExec{},
	}

	if err := s.Run(); err != nil {
		t.Errorf("Run() error = %v, want nil on exhausted input", err)
	}
}

func TestPlainSession_FatalErrorStopsLoop(t *testing.T) {
	fatal := errors.New("disk full")
	var buf bytes.Buffer
	exec := &stubExec{fn: func(line string) (string, error) {
		if line == "boom" {
			return "", fatal
		}
		return "ok", nil
	}}
	s := &PlainSession{
		in:   strings.NewReader("boom\nlist\n"),
		out:  &buf,
		exec: exec,
	}

	err := s.Run()

	if !errors.Is(err, fatal) {
		t.Fatalf("Run() error = %v, want the fatal error", err)
	}
	if len(exec.executed) != 1 {
		t.Errorf("executed = %v, want the loop to stop after the fatal command", exec.executed)
	}
}

func TestPlainSession_MultiLineFeedbackDecoration(t *testing.T) {
	var buf bytes.Buffer
	exec := &stubExec{fn: func(line string) (string, error) {
		if line == "exit" {
			return "", engine.ErrExitRequested
		}
		return "line one\nline two", nil
	}}
	s := &PlainSession{
		in:   strings.NewReader("list\nexit\n"),
		out:  &buf,
		exec: exec,
	}

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "|| line one\n|| line two\n") {
		t.Errorf("multi-line feedback not decorated per line:\n%s", buf.String())
	}
}
