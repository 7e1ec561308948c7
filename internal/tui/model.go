package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollis-dev/rolodex/internal/engine"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// inputHeight is the number of lines occupied by the command input.
const inputHeight = 1

// Model is the Bubble Tea model for the interactive session: a scrolling
// transcript of commands and feedback above a single command input line.
type Model struct {
	exec    Executor
	version string

	input      textinput.Model
	viewport   viewport.Model
	help       help.Model
	keys       sessionKeys
	transcript []string

	width  int
	height int
	done   bool
	fatal  error
}

// NewModel creates a session Model with a focused command input and the
// welcome banner as the initial transcript.
func NewModel(exec Executor, version string) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle().Render("Enter command: ")
	ti.Placeholder = "add John Doe p/98765432 e/johnd@gmail.com"
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		exec:     exec,
		version:  version,
		input:    ti,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     SessionKeyMap(),
	}
	m.appendTranscript(
		BannerStyle().Render(version),
		BannerStyle().Render(msgWelcome),
		DividerStyle().Render(Divider),
	)
	return m
}

// FatalErr returns the storage error that terminated the session, if any.
func (m Model) FatalErr() error {
	return m.fatal
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - len("Enter command: ") - 1
		m.viewport.Width = msg.Width
		m.viewport.Height = m.contentHeight()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
			// The viewport's own key map handles page scrolling.
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line and appends the exchange to the
// transcript. Blank and comment lines are consumed silently.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" || strings.HasPrefix(line, commentMarker) {
		return m, nil
	}

	m.appendTranscript(EchoStyle().Render(fmt.Sprintf(msgEchoFormat, line)))

	feedback, err := m.exec.Execute(line)
	switch {
	case errors.Is(err, engine.ErrExitRequested):
		m.appendTranscript(msgGoodbye, DividerStyle().Render(Divider))
		m.done = true
		return m, tea.Quit
	case err != nil:
		m.fatal = err
		m.done = true
		return m, tea.Quit
	}

	m.appendTranscript(feedback, DividerStyle().Render(Divider))
	return m, nil
}

// appendTranscript adds messages to the transcript and keeps the
// viewport pinned to the latest entry.
func (m *Model) appendTranscript(messages ...string) {
	for _, msg := range messages {
		m.transcript = append(m.transcript, strings.Split(msg, "\n")...)
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// contentHeight returns the usable height for the transcript viewport.
func (m Model) contentHeight() int {
	h := m.height - inputHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the transcript, the command input, and the help bar.
func (m Model) View() string {
	if m.done {
		// Leave the final transcript on screen without input chrome.
		return strings.Join(m.transcript, "\n") + "\n"
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	return m.viewport.View() + "\n" + m.input.View() + "\n" + m.help.View(m.keys)
}

// TUISession runs the session as a Bubble Tea program.
// Falls back to the plain session if the program fails to start.
type TUISession struct {
	in      io.Reader
	out     io.Writer
	exec    Executor
	version string
}

// Run starts the Bubble Tea program and reports any fatal storage error
// the session ended with.
func (s *TUISession) Run() error {
	m := NewModel(s.exec, s.version)
	p := tea.NewProgram(m, tea.WithInput(s.in), tea.WithOutput(s.out))

	final, err := p.Run()
	if err != nil {
		// Fall back to plain text for the rest of the session.
		plain := &PlainSession{in: s.in, out: s.out, exec: s.exec, version: s.version}
		return plain.Run()
	}

	if fm, ok := final.(Model); ok {
		return fm.FatalErr()
	}
	return nil
}
