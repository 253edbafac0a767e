package prompt

import (

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/raphi011/remark/internal/ui/styles"
)

// Option is one entry of a selection prompt.
type Option struct {
	Title  string // shown and filtered on
	Detail string // second line, e.g. the remark a candidate would get
}

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type listItem struct {
	Option
	index int
}

func (i listItem) Title() string       { return i.Option.Title }
func (i listItem) Description() string { return i.Detail }
func (i listItem) FilterValue() string { return i.Option.Title }

type selectModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// While filtering, keys belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

func newSelectModel(prompt string, options []Option) selectModel {
	items := make([]list.Item, len(options))
	showDetail := false
	for i, opt := range options {
		items[i] = listItem{Option: opt, index: i}
		if opt.Detail != "" {
			showDetail = true
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = showDetail
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	delegate.Styles.SelectedDesc = styles.RemarkStyle

	height := len(options) + 6
	if showDetail {
		height = 2*len(options) + 6
	}
	l := list.New(items, delegate, 72, min(height, 20))
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return selectModel{list: l, selected: -1}
}

// Select shows a list selection prompt and returns the user's selection.
func Select(prompt string, options []Option) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	p := newProgram(newSelectModel(prompt, options))
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	return selectResult(finalModel.(selectModel), options), nil
}

func selectResult(m selectModel, options []Option) SelectResult {
	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}
	}
	return SelectResult{
		Value: options[m.selected].Title,
		Index: m.selected,
	}
}
