package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayProjects prints the stored projects, one per line.
func (t *TUI) DisplayProjects(projects []ProjectInfo) error {
	for _, project := range projects {
		_, _ = fmt.Fprintf(t.output, "%s: %d volumes, %d templates, %d materials\n",
			project.Name, project.Volumes, project.Templates, project.Materials)
	}

	return nil
}

// BrowseTree opens an interactive browser over the volume hierarchy.
func (t *TUI) BrowseTree(title string, nodes []TreeNode) error {
	model := newTreeModel(title, nodes)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tree browser: %w", err)
	}

	return nil
}

// DisplayMessage prints a formatted message.
func (t *TUI) DisplayMessage(format string, args ...any) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}
