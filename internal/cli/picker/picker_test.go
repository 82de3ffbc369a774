package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testItems = []Item{
	{Label: "Eye Saver", Detail: "20 minutes", Value: "20"},
	{Label: "Pomodoro Focus", Detail: "25 minutes", Value: "25"},
	{Label: "Standard Hour", Detail: "60 minutes", Value: "60"},
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_InitialCursor(t *testing.T) {
	assert.Equal(t, 2, NewModel("t", testItems, 2).Cursor)
	assert.Equal(t, 0, NewModel("t", testItems, 7).Cursor)
	assert.Equal(t, 0, NewModel("t", testItems, -1).Cursor)
}

func TestUpdate_MovesAndWraps(t *testing.T) {
	m := NewModel("t", testItems, 0)

	m.Update(key("down"))
	assert.Equal(t, 1, m.Cursor)
	m.Update(key("j"))
	assert.Equal(t, 2, m.Cursor)
	m.Update(key("down"))
	assert.Equal(t, 0, m.Cursor)
	m.Update(key("up"))
	assert.Equal(t, 2, m.Cursor)
	m.Update(key("k"))
	assert.Equal(t, 1, m.Cursor)
}

func TestUpdate_EnterSelects(t *testing.T) {
	m := NewModel("t", testItems, 1)

	_, ok := m.Selected()
	assert.False(t, ok)

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	item, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "25", item.Value)
	assert.Empty(t, m.View())
}

func TestUpdate_EscCancels(t *testing.T) {
	m := NewModel("t", testItems, 0)

	_, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting)

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestView_ListsItems(t *testing.T) {
	m := NewModel("How often?", testItems, 2)
	view := m.View()

	assert.Contains(t, view, "How often?")
	for _, item := range testItems {
		assert.Contains(t, view, item.Label)
		assert.Contains(t, view, item.Detail)
	}
	assert.Contains(t, view, IconCursor)
	assert.Contains(t, view, "enter")
}
