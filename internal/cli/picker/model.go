// Package picker is a single-choice terminal list built on bubbletea.
package picker

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user leaves the picker without choosing.
var ErrCancelled = errors.New("selection cancelled")

// Item is one row of the list.
type Item struct {
	Label  string
	Detail string
	Value  string
}

// Model is the bubbletea model for the picker
type Model struct {
	Title  string
	Items  []Item
	Styles Styles

	// State
	Cursor int

	// Control
	Chosen   bool
	Quitting bool
}

// NewModel creates a picker with the cursor on initial.
func NewModel(title string, items []Item, initial int) *Model {
	if initial < 0 || initial >= len(items) {
		initial = 0
	}
	return &Model{
		Title:  title,
		Items:  items,
		Styles: DefaultStyles(),
		Cursor: initial,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected returns the chosen item. ok is false until the user confirms.
func (m *Model) Selected() (Item, bool) {
	if !m.Chosen || len(m.Items) == 0 {
		return Item{}, false
	}
	return m.Items[m.Cursor], true
}

// Run shows the picker on in/out and blocks until the user chooses or
// cancels.
func Run(ctx context.Context, title string, items []Item, initial int, in io.Reader, out io.Writer) (Item, error) {
	if len(items) == 0 {
		return Item{}, fmt.Errorf("picker %q has no items", title)
	}

	m := NewModel(title, items, initial)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return Item{}, fmt.Errorf("run picker: %w", err)
	}

	item, ok := m.Selected()
	if !ok {
		return Item{}, ErrCancelled
	}
	return item, nil
}
