package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandfox-dev/foxchat/internal/service/dispatch"
	"github.com/sandfox-dev/foxchat/internal/service/session"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

// Terminal runs the bubbletea program as a service. Quitting the program
// (Ctrl+C or the context) stops the rest of the process through the stop
// callback handed in by the caller.
type Terminal struct {
	program *tea.Program
	stop    context.CancelFunc
}

func NewTerminal(ctx context.Context, d *dispatch.Dispatcher, sess *session.Manager, degraded bool, stop context.CancelFunc) *Terminal {
	model := NewModel(ctx, d, sess, degraded)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	return &Terminal{program: program, stop: stop}
}

func (t *Terminal) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("terminal UI started")

	_, err := t.program.Run()

	// The UI exiting means the user is done, regardless of why
	if t.stop != nil {
		t.stop()
	}
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (t *Terminal) Shutdown(ctx context.Context) error {
	t.program.Quit()
	return nil
}
