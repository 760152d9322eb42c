package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/snapsphere/internal/tui/view"
)

// Cells between the modal edge and the footer buttons: border, padding and
// footer padding.
const modalFooterInset = 3

// handleMouseMsg handles clicks and the scroll wheel.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !m.showModal {
			m.moveCursor(-max(m.layout.Cols, 1))
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if !m.showModal {
			m.moveCursor(max(m.layout.Cols, 1))
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if m.showModal {
		return m.handleModalClick(msg)
	}

	x, y := msg.X, msg.Y
	switch {
	case m.layout.themeButtonRect().Contains(x, y):
		LogMouse(msg, "theme_button")
		m.toggleTheme()
		return m, nil
	case m.layout.searchButtonRect().Contains(x, y):
		LogMouse(msg, "search_button")
		return m.submitSearch("search_button")
	case m.layout.searchBoxRect().Contains(x, y):
		LogMouse(msg, "search_box")
		return m.focusSearch("click")
	}

	if index, ok := m.layout.cardAt(x, y, m.scrollRow, len(m.photos)); ok {
		LogMouse(msg, "card")
		return m.openDetail(index)
	}

	LogMouse(msg, "none")
	m.blurSearch("click_outside")
	return m, nil
}

// handleModalClick dismisses the detail view on a click outside it or on its
// Close button, and copies the URL on the copy button.
func (m Model) handleModalClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	_, modal := m.overlay.Frame(m.width, m.height, m.renderModal())
	if !modal.Contains(msg.X, msg.Y) {
		LogMouse(msg, "backdrop")
		m.dismissModal("backdrop_click")
		return m, nil
	}

	footerRow := modal.Y + modal.H - modalFooterInset
	if msg.Y != footerRow {
		LogMouse(msg, "modal")
		return m, nil
	}

	styles := m.styles.modalStyles()
	closeW := lipgloss.Width(styles.ModalButtonActiveStyle.Render(view.DetailCloseLabel))
	copyW := lipgloss.Width(styles.ModalButtonStyle.Render(view.DetailCopyLabel))
	closeX := modal.X + modalFooterInset
	copyX := closeX + closeW + 1
	switch {
	case msg.X >= closeX && msg.X < closeX+closeW:
		LogMouse(msg, "close_button")
		m.dismissModal("close_button")
		return m, nil
	case msg.X >= copyX && msg.X < copyX+copyW:
		LogMouse(msg, "copy_button")
		return m, m.copySelectedURL()
	}
	return m, nil
}
