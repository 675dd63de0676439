package prompt

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Option is one selectable entry. Detail shows as the second line.
type Option struct {
	Label  string
	Detail string
}

type selectItem struct {
	option Option
	index  int
}

func (i selectItem) Title() string       { return i.option.Label }
func (i selectItem) Description() string { return i.option.Detail }
func (i selectItem) FilterValue() string { return i.option.Label }

type selectModel struct {
	list    list.Model
	choice  int
	picked  bool
	aborted bool
}

func newSelectModel(title string, options []Option) selectModel {
	items := make([]list.Item, len(options))
	for i, option := range options {
		items[i] = selectItem{option: option, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(cursorStyle.GetForeground())
	delegate.Styles.NormalDesc = detailStyle
	if !hasDetails(options) {
		delegate.ShowDescription = false
		delegate.SetSpacing(0)
	}

	l := list.New(items, delegate, 60, listHeight(len(options)))
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return selectModel{list: l, choice: -1}
}

func hasDetails(options []Option) bool {
	for _, option := range options {
		if option.Detail != "" {
			return true
		}
	}
	return false
}

func listHeight(n int) int {
	const maxVisible = 14
	h := n*2 + 4
	if h > maxVisible {
		return maxVisible
	}
	return h
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		// While a filter is being typed, esc clears the filter
		// instead of aborting the prompt.
		if m.list.FilterState() == list.Filtering {
			break
		}
		if isAbortKey(msg) {
			m.aborted = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			if item, ok := m.list.SelectedItem().(selectItem); ok {
				m.choice = item.index
				m.picked = true
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.picked || m.aborted {
		return ""
	}
	return m.list.View()
}

// Select shows a filterable list and returns the chosen option's index.
func Select(title string, options []Option) (int, error) {
	if len(options) == 0 {
		return 0, ErrAborted
	}
	final, err := runProgram(newSelectModel(title, options))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if !m.picked {
		return 0, ErrAborted
	}
	return m.choice, nil
}
