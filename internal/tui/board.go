package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"advent/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, milestones *engine.Milestones, out io.Writer) error {
	m := newBoardModel(ctx, svc, milestones)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
