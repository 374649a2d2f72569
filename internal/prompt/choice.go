package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a vertical list with a movable cursor.
type selectModel struct {
	label       string
	options     []string
	cursor      int
	done        bool
	aborted     bool
	interrupted bool
}

func newSelectModel(label string, options []string) selectModel {
	return selectModel{label: label, options: options}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "ctrl+c":
		m.aborted, m.interrupted = true, true
		return m, tea.Quit
	case "esc", "q":
		m.aborted = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.options) - 1
	case "enter", " ":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return markStyle.Render("✔ ") + questionStyle.Render(m.label) + " · " + answerStyle.Render(m.options[m.cursor]) + "\n"
	}
	if m.aborted {
		return errorStyle.Render("✘ ") + questionStyle.Render(m.label) + "\n"
	}

	var b strings.Builder
	b.WriteString(markStyle.Render("? ") + questionStyle.Render(m.label) + "\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("❯ " + opt))
		} else {
			b.WriteString("  " + opt)
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("↑/↓ to move, enter to select, esc to cancel") + "\n")
	return b.String()
}
