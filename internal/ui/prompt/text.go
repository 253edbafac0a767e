package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/raphi011/remark/internal/ui/styles"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s\n%s", styles.PrimaryStyle.Render(m.prompt), m.textInput.View()))
}

func newTextInputModel(prompt, initial string, limit int) textInputModel {
	ti := textinput.New()
	ti.Placeholder = "remark"
	ti.SetValue(initial)
	ti.Focus()
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.SetWidth(60)
	return textInputModel{textInput: ti, prompt: prompt}
}

// TextInput asks for a single line of text, pre-filled with initial and
// limited to limit characters (0 means no limit). The value is trimmed.
func TextInput(prompt, initial string, limit int) (TextInputResult, error) {
	p := newProgram(newTextInputModel(prompt, initial, limit))
	finalModel, err := p.Run()
	if err != nil {
		return TextInputResult{}, err
	}
	m := finalModel.(textInputModel)
	if m.cancelled {
		return TextInputResult{Cancelled: true}, nil
	}
	return TextInputResult{Value: strings.TrimSpace(m.textInput.Value())}, nil
}
