package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the editor and blocks until the user quits or ctx is canceled.
// It returns the final receipt text.
func Run(ctx context.Context, opts ...Option) (string, error) {
	program := tea.NewProgram(New(opts...), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("interactive session failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	return m.Receipt(), nil
}
