package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicalabs/planilla/internal/domain"
)

var frequencyOrder = []domain.PayFrequency{
	domain.FrequencyMonthly,
	domain.FrequencyBiweekly,
	domain.FrequencyWeekly,
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			if msg.String() == "q" && m.inputs[m.focus].Focused() {
				break // let "q" type into the field
			}
			return m, tea.Quit
		case "tab", "down", "enter":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "left":
			m.cycleFrequency(-1)
			m.recalculate()
			return m, nil
		case "right":
			m.cycleFrequency(1)
			m.recalculate()
			return m, nil
		case "ctrl+h":
			// Toggle the employer-size bracket.
			if m.headcount >= 50 {
				m.headcount = 0
			} else {
				m.headcount = 50
			}
			m.recalculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recalculate()
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *Model) cycleFrequency(dir int) {
	for i, f := range frequencyOrder {
		if f == m.frequency {
			m.frequency = frequencyOrder[(i+dir+len(frequencyOrder))%len(frequencyOrder)]
			return
		}
	}
}
