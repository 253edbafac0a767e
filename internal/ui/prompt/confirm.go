package prompt

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/raphi011/remark/internal/ui/styles"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt     string
	defaultYes bool
	confirmed  bool
	done       bool
	cancelled  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
		case "n", "N":
			m.confirmed = false
		case "enter":
			m.confirmed = m.defaultYes
		case "ctrl+c", "q", "esc":
			m.cancelled = true
		default:
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) hint() string {
	if m.defaultYes {
		return "[Y/n]"
	}
	return "[y/N]"
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s ", m.prompt, styles.MutedStyle.Render(m.hint())))
}

// Confirm shows a yes/no prompt and returns the user's choice.
// Enter without input answers defaultYes.
func Confirm(prompt string, defaultYes bool) (ConfirmResult, error) {
	model := confirmModel{prompt: prompt, defaultYes: defaultYes}
	p := newProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed && !m.cancelled,
		Cancelled: m.cancelled,
	}, nil
}
