package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	title   string
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(title, initial string) inputModel {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	return inputModel{title: title, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if isAbortKey(key) {
			m.aborted = true
			return m, tea.Quit
		}
		if key.Type == tea.KeyEnter {
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return titleStyle.Render(m.title) + "\n" + m.input.View()
}

// Input asks for a line of text, prefilled with initial. The prefill is
// how callers offer "now" as the default timestamp.
func Input(title, initial string) (string, error) {
	final, err := runProgram(newInputModel(title, initial))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if !m.done {
		return "", ErrAborted
	}
	return m.input.Value(), nil
}
