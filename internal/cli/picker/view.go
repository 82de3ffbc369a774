package picker

import (
	"fmt"
	"strings"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Chosen || m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.Styles.Title.Render(m.Title))
	b.WriteString("\n\n")

	for i, item := range m.Items {
		b.WriteString(m.renderItem(i, item))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderItem renders one row, highlighting the cursor
func (m *Model) renderItem(i int, item Item) string {
	cursor := "  "
	label := m.Styles.Item.Render(item.Label)
	if i == m.Cursor {
		cursor = m.Styles.Cursor.Render(IconCursor) + " "
		label = m.Styles.Selected.Render(item.Label)
	}

	if item.Detail == "" {
		return cursor + label
	}
	return fmt.Sprintf("%s%s  %s", cursor, label, m.Styles.Detail.Render(item.Detail))
}

// renderFooter renders the key hints
func (m *Model) renderFooter() string {
	hints := []string{
		m.Styles.FooterKey.Render("↑/↓") + " move",
		m.Styles.FooterKey.Render("enter") + " select",
		m.Styles.FooterKey.Render("q") + " cancel",
	}
	return m.Styles.Footer.Render(strings.Join(hints, "  "))
}
