package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshRenderer()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.cell.Toggle()
		m.refreshRenderer()
		return m, nil
	}

	switch m.viewMode {
	case ViewDetail:
		return m.handleDetailKeys(msg)
	default:
		return m.handleListKeys(msg)
	}
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else if !m.pager.OnFirstPage() {
			m.pager.Prev()
			m.cursor = len(m.Page()) - 1
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.Page())-1 {
			m.cursor++
		} else if !m.pager.OnLastPage() {
			m.pager.Next()
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.PrevPage):
		m.pager.Prev()
		m.clampCursor()
	case key.Matches(msg, m.keys.NextPage):
		m.pager.Next()
		m.clampCursor()
	case key.Matches(msg, m.keys.FirstPage):
		m.pager.First()
		m.cursor = 0
	case key.Matches(msg, m.keys.LastPage):
		m.pager.Last()
		m.clampCursor()
	case key.Matches(msg, m.keys.Open):
		if entry, ok := m.Selected(); ok {
			m.openDetail(entry)
		}
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.Selected()
	if !ok {
		m.viewMode = ViewList
		return m, nil
	}
	axes := entry.Spec.Axes()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.viewMode = ViewList
	case key.Matches(msg, m.keys.NextAxis), key.Matches(msg, m.keys.Down):
		if len(axes) > 0 {
			m.axis = (m.axis + 1) % len(axes)
		}
	case key.Matches(msg, m.keys.Up):
		if len(axes) > 0 {
			m.axis = (m.axis - 1 + len(axes)) % len(axes)
		}
	case key.Matches(msg, m.keys.NextPage):
		m.cycleValue(entry, 1)
	case key.Matches(msg, m.keys.PrevPage):
		m.cycleValue(entry, -1)
	}
	return m, nil
}
