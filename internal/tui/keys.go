package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/snapsphere/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

// handleBrowseKeys handles keys while moving between cards.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := max(m.layout.Cols, 1)
	page := cols * max(m.layout.VisibleRows, 1)

	switch msg.String() {
	case "q":
		return m.quit()
	case "/", "s":
		return m.focusSearch("key")
	case "t":
		m.toggleTheme()
		return m, nil
	case "r":
		return m, m.startFetch("refresh")
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-cols)
	case "down", "j":
		m.moveCursor(cols)
	case "pgup":
		m.moveCursor(-page)
	case "pgdown":
		m.moveCursor(page)
	case "home", "g":
		m.setCursor(0)
	case "end", "G":
		m.setCursor(len(m.photos) - 1)
	case "enter", " ":
		return m.openDetail(m.cursor)
	}
	return m, nil
}

// handleSearchKeys handles keys while the search box has focus.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitSearch("enter")
	case tea.KeyEsc, tea.KeyTab:
		m.blurSearch("esc")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.searchTerm {
		m.searchTerm = value
		m.editSeq++
		return m, tea.Batch(cmd, commands.DebounceSearch(m.editSeq, searchDebounce))
	}
	return m, cmd
}

// handleModalKeys handles keys while the detail view is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", "backspace":
		m.dismissModal("key")
		return m, nil
	case "y":
		return m, m.copySelectedURL()
	case "t":
		m.toggleTheme()
		return m, nil
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	return m, tea.Quit
}

func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Model) setCursor(index int) {
	if len(m.photos) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(index, 0), len(m.photos)-1)
	m.scrollRow = m.layout.scrollFor(m.cursor, m.scrollRow, len(m.photos))
}

func (m Model) focusSearch(reason string) (tea.Model, tea.Cmd) {
	if m.mode == ModeSearch {
		return m, nil
	}
	LogModeChange(m.mode, ModeSearch, reason)
	m.mode = ModeSearch
	cmd := m.search.Focus()
	return m, cmd
}

func (m *Model) blurSearch(reason string) {
	if m.mode != ModeSearch {
		return
	}
	LogModeChange(m.mode, ModeBrowse, reason)
	m.search.Blur()
	m.mode = ModeBrowse
}

// submitSearch fetches the typed term right away, skipping the debounce.
func (m Model) submitSearch(reason string) (tea.Model, tea.Cmd) {
	m.searchTerm = m.search.Value()
	m.editSeq++
	m.blurSearch(reason)
	return m, m.startFetch(reason)
}

// openDetail selects the photo at index and shows it in the detail modal.
func (m Model) openDetail(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.photos) {
		return m, nil
	}
	m.blurSearch("open_detail")

	selected := m.photos[index]
	m.cursor = index
	m.selected = &selected
	m.showModal = true
	LogModeChange(m.mode, ModeModal, "open_detail")
	m.mode = ModeModal
	return m, nil
}

// dismissModal hides the detail view. The selection and the grid are kept.
func (m *Model) dismissModal(reason string) {
	if !m.showModal {
		return
	}
	LogModeChange(m.mode, ModeBrowse, reason)
	m.showModal = false
	m.mode = ModeBrowse
}

func (m *Model) toggleTheme() {
	m.themes.Toggle()
	m.styles = NewStyles(m.themes.Current())
	m.applyStyles()
	m.relayout()
	LogThemeToggle(m.themes.ModeName(), m.themes.Current().Name)
}

func (m Model) copySelectedURL() tea.Cmd {
	if m.selected == nil || m.selected.ImageURL == "" {
		return nil
	}
	return commands.CopyToClipboard(m.selected.ImageURL, "Image URL copied")
}
