package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	question string
	value    bool
	done     bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if isAbortKey(key) {
		m.aborted = true
		return m, tea.Quit
	}
	switch key.String() {
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	hint := "y/N"
	if m.value {
		hint = "Y/n"
	}
	return fmt.Sprintf("%s %s ", titleStyle.Render(m.question), detailStyle.Render("["+hint+"]"))
}

// Confirm asks a yes/no question. Enter accepts def.
func Confirm(question string, def bool) (bool, error) {
	final, err := runProgram(confirmModel{question: question, value: def})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if !m.done {
		return false, ErrAborted
	}
	return m.value, nil
}
