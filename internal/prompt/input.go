package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a single-line text field with validation on Enter.
type inputModel struct {
	label       string
	input       textinput.Model
	validate    func(string) error
	err         error
	done        bool
	aborted     bool
	interrupted bool
}

func newInputModel(label string, validate func(string) error) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Focus()
	if validate == nil {
		validate = func(string) error { return nil }
	}
	return inputModel{label: label, input: ti, validate: validate}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyCtrlC:
			m.aborted, m.interrupted = true, true
			return m, tea.Quit
		case tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if err := m.validate(m.input.Value()); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.done = true
			return m, tea.Quit
		}
		m.err = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder
	switch {
	case m.done:
		b.WriteString(markStyle.Render("✔ ") + questionStyle.Render(m.label) + " · " + answerStyle.Render(m.input.Value()) + "\n")
		return b.String()
	case m.aborted:
		b.WriteString(errorStyle.Render("✘ ") + questionStyle.Render(m.label) + "\n")
		return b.String()
	}

	b.WriteString(markStyle.Render("? ") + questionStyle.Render(m.label) + " › " + m.input.View() + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("✘ "+m.err.Error()) + "\n")
	}
	return b.String()
}
