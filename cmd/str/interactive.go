package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/strkit/str"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	activeSlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLines = 12

type workbenchModel struct {
	session *session
	input   textinput.Model
	history []string
}

func newWorkbenchModel() *workbenchModel {
	ti := textinput.New()
	ti.Placeholder = "set hello world"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &workbenchModel{
		session: newSession(),
		input:   ti,
	}
}

func (m *workbenchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *workbenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "q" || line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			out, err := m.session.eval(line)
			m.push("> " + line)
			if err != nil {
				m.push(errorStyle.Render("error: " + err.Error()))
			} else if out != "" {
				for _, l := range strings.Split(out, "\n") {
					m.push(outputStyle.Render(l))
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *workbenchModel) push(line string) {
	m.history = append(m.history, line)
	if len(m.history) > historyLines {
		m.history = m.history[len(m.history)-historyLines:]
	}
}

func (m *workbenchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("str workbench"))
	b.WriteString("\n\n")

	for _, name := range []string{"a", "b"} {
		label := " " + name + " "
		if name == m.session.cur {
			b.WriteString(activeSlotStyle.Render(label))
		} else {
			b.WriteString(slotStyle.Render(label))
		}
		b.WriteString(" ")
		b.WriteString(m.renderSlot(m.session.slots[name]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("help for commands • q quit"))

	return b.String()
}

func (m *workbenchModel) renderSlot(s *str.Str) string {
	content := s.String()
	if len(content) > 40 {
		content = content[:37] + "..."
	}
	state := fmt.Sprintf("%-7s len=%-4d cap=%-4d", storageMode(s), s.Len(), s.Cap())
	if n := s.LocalSize(); n > 0 {
		state += fmt.Sprintf(" local=%d", n)
	}
	return modeStyle.Render(state) + " " + fmt.Sprintf("%q", content)
}

func runInteractive() error {
	p := tea.NewProgram(newWorkbenchModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
