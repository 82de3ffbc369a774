package picker

import tea "github.com/charmbracelet/bubbletea"

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k", "shift+tab":
		if m.Cursor > 0 {
			m.Cursor--
		} else {
			m.Cursor = len(m.Items) - 1
		}

	case "down", "j", "tab":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		} else {
			m.Cursor = 0
		}

	case "home", "g":
		m.Cursor = 0

	case "end", "G":
		m.Cursor = len(m.Items) - 1

	case "enter", " ":
		m.Chosen = true
		return m, tea.Quit

	case "q", "esc", "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	}

	return m, nil
}
