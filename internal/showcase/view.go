package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.viewMode {
	case ViewDetail:
		body = m.renderDetail()
	default:
		body = m.renderList()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		footerStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) renderHeader() string {
	mode := m.cell.Get()
	icon := mode.Icon()
	if !m.unicode {
		icon = "*"
	}
	return titleStyle.Render(fmt.Sprintf("atomic showcase  %s %s", icon, mode.Label()))
}

func (m Model) renderList() string {
	if len(m.entries) == 0 {
		return mutedStyle.Render("No components registered.")
	}

	var b strings.Builder
	for i, entry := range m.Page() {
		line := fmt.Sprintf("%-12s %-9s %s", entry.Name, entry.Level, entry.Summary)
		if entry.Custom {
			line += " (custom)"
		}
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	items, err := catalog.PaginationBar(m.pager, catalog.SizeSmall)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(m.renderer.PaginationBar(items))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("page %d of %d · %d components", m.pager.Current(), m.pager.Total(), len(m.entries))))
	return b.String()
}

func (m Model) renderDetail() string {
	entry, ok := m.Selected()
	if !ok {
		return mutedStyle.Render("Nothing selected.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(entry.Name))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s · %s", entry.Level, entry.Summary)))
	b.WriteString("\n\n")

	for i, axis := range entry.Spec.Axes() {
		name := fmt.Sprintf("%-10s", axis.Name)
		if i == m.axis {
			name = focusedAxisStyle.Render(name)
		}
		values := make([]string, len(axis.Values))
		for j, v := range axis.Values {
			if v.Name == m.selection[axis.Name] {
				values[j] = chosenValueStyle.Render("[" + v.Name + "]")
			} else {
				values[j] = v.Name
			}
		}
		b.WriteString(name + " " + strings.Join(values, " ") + "\n")
	}

	classes, err := variant.Resolve(entry.Spec, m.selection)
	if err != nil {
		b.WriteString("\n" + errorStyle.Render(err.Error()))
		return b.String()
	}

	res := m.renderer.Translate(classes)
	b.WriteString("\n")
	b.WriteString(res.Style.Render(entry.Name))
	b.WriteString("\n\n")
	b.WriteString(classes.String())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d classes previewed, %d browser-only", len(res.Applied), len(res.Ignored))))
	return b.String()
}
