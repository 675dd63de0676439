// Package prompt provides the interactive pickers used by the CLI:
// a list selector, a prefilled text input, and a yes/no question.
// Every prompt returns ErrAborted when the user backs out.
package prompt

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when a prompt is dismissed with esc or ctrl+c.
var ErrAborted = errors.New("prompt: aborted")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func isAbortKey(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC
}

func runProgram(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}
	return final, nil
}
