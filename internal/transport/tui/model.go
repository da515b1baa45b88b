package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandfox-dev/foxchat/internal/core"
	"github.com/sandfox-dev/foxchat/internal/service/dispatch"
	"github.com/sandfox-dev/foxchat/internal/service/session"
)

const (
	userPrefix   = "[you]: "
	thinkingLine = "... thinking ..."
	attachCmd    = "/attach"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	modeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	userStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	thinkingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// dispatchDoneMsg carries the buffered surface output of one finished submit
// back onto the event loop.
type dispatchDoneMsg struct {
	snap *snapshot
}

// Model is the single bubbletea model for the whole application: a
// transcript viewport on top, a status line and a text input below it.
type Model struct {
	ctx        context.Context
	dispatcher *dispatch.Dispatcher
	session    *session.Manager
	degraded   bool

	viewport   viewport.Model
	input      textinput.Model
	modeIdx    int
	attachment string
	transcript []string
	busy       bool
	ready      bool
	width      int
	height     int
}

func NewModel(ctx context.Context, d *dispatch.Dispatcher, sess *session.Manager, degraded bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message, or /attach <path>"
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Focus()

	m := Model{
		ctx:        ctx,
		dispatcher: d,
		session:    sess,
		degraded:   degraded,
		viewport:   viewport.New(80, 20),
		input:      ti,
	}
	m.transcript = m.banner()
	return m
}

func (m Model) banner() []string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s v%s", core.FoxName, core.FoxVersion)),
		mutedStyle.Render("Tab cycles the mode. /attach <path> attaches a file. Ctrl+C quits."),
	}
	if m.degraded {
		lines = append(lines, warnStyle.Render(
			"GEMINI_API_KEY is not set. History and facts work; AI answers do not."))
	}
	return lines
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		m.input.Width = max(msg.Width-4, 20)
		m.ready = true
		m.refresh()
		return m, nil

	case dispatchDoneMsg:
		m.fold(msg.snap)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.modeIdx = (m.modeIdx + 1) % len(core.Modes)
			return m, nil
		case "shift+tab":
			m.modeIdx = (m.modeIdx - 1 + len(core.Modes)) % len(core.Modes)
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit freezes the current input and runs the dispatcher off the event
// loop. Only one submit is in flight at a time.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	input := strings.TrimSpace(m.input.Value())
	if strings.HasPrefix(input, attachCmd) {
		m.handleAttach(strings.TrimSpace(strings.TrimPrefix(input, attachCmd)))
		m.input.Reset()
		return m, nil
	}

	if input != "" {
		m.transcript = append(m.transcript, userStyle.Render(userPrefix)+input)
	}
	m.transcript = append(m.transcript, thinkingStyle.Render(thinkingLine))
	m.refresh()

	snap := &snapshot{
		input:      input,
		mode:       m.mode(),
		attachment: m.attachment,
	}
	m.busy = true
	m.input.Reset()

	return m, func() tea.Msg {
		m.dispatcher.Dispatch(m.ctx, snap)
		return dispatchDoneMsg{snap: snap}
	}
}

func (m *Model) handleAttach(path string) {
	if path == "" {
		m.attachment = ""
		m.transcript = append(m.transcript, mutedStyle.Render("Attachment cleared."))
	} else {
		m.attachment = path
		m.transcript = append(m.transcript, mutedStyle.Render("Attached: "+path))
	}
	m.refresh()
}

// fold merges the buffered surface output into the transcript and drops the
// thinking placeholder.
func (m *Model) fold(snap *snapshot) {
	if n := len(m.transcript); n > 0 && m.transcript[n-1] == thinkingStyle.Render(thinkingLine) {
		m.transcript = m.transcript[:n-1]
	}

	if snap.replace {
		m.transcript = append(m.banner(), snap.replaced)
	} else {
		m.transcript = append(m.transcript, snap.appended...)
	}

	m.busy = false
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) mode() core.Mode {
	return core.Modes[m.modeIdx]
}

func (m Model) statusLine() string {
	parts := []string{
		"mode: " + modeStyle.Render(string(m.mode())),
		fmt.Sprintf("ctx tokens: ~%d", m.session.TokenEstimate()),
	}
	if m.attachment != "" {
		parts = append(parts, "attach: "+m.attachment)
	}
	if m.degraded {
		parts = append(parts, warnStyle.Render("offline"))
	}
	if m.busy {
		parts = append(parts, "working")
	}
	return statusStyle.Render(strings.Join(parts, "  |  "))
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.statusLine() + "\n" + m.input.View()
}
