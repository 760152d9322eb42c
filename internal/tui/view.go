package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/snapsphere/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.showModal && m.selected != nil
	modal := ""
	if showModal {
		modal = m.renderModal()
	}
	m.overlay.SetActive(showModal)

	return view.ViewState{
		Width:        m.width,
		Height:       m.height,
		BaseContent:  base,
		ModalContent: modal,
		ShowModal:    showModal,
		Overlay:      m.overlay,
		Placeholder:  "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layout
	if layout.InnerW <= 0 || layout.GridH <= 0 {
		return "Terminal too small"
	}

	header := view.RenderHeader(view.HeaderState{
		InnerW:    layout.InnerW,
		Geometry:  layout.Header,
		Title:     m.styles.TitleStyle.Render(appTitle),
		SearchBox: m.renderSearchBox(),
		SearchBtn: m.styles.ButtonStyle.Render(searchButtonLabel),
		ThemeBtn:  m.styles.ThemeButtonStyle.Render(m.themes.ToggleLabel()),
		Bg:        m.styles.colorBg,
	})

	status := view.RenderStatusBar(view.StatusBarState{
		InnerW:       layout.InnerW,
		Loading:      m.loading,
		Spinner:      m.spinner.View(),
		Error:        m.errMsg,
		Info:         m.infoText(),
		LoadingStyle: m.styles.LoadingStyle,
		ErrorStyle:   m.styles.ErrorStyle,
		InfoStyle:    m.styles.InfoStyle,
		Bg:           m.styles.colorBg,
	})

	grid := view.RenderGrid(view.GridState{
		Cards:  m.visibleCards(),
		Cols:   layout.Cols,
		Gap:    gridGap,
		InnerW: layout.InnerW,
		Height: layout.GridH,
		Empty:  m.styles.EmptyGridTextStyle.Render(m.emptyText()),
		Bg:     m.styles.colorBg,
	})

	footer := view.RenderFooter(view.FooterState{
		InnerW:      layout.InnerW,
		StatusText:  m.statusMsg,
		HelpText:    m.helpText(),
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	})

	content := lipgloss.JoinVertical(lipgloss.Left, header, status, grid, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderSearchBox() string {
	style := m.styles.SearchBoxStyle
	if m.mode == ModeSearch {
		style = m.styles.SearchBoxFocusedStyle
	}
	// Width excludes the border.
	return style.Width(max(m.layout.Header.SearchW-2, 1)).Render(m.search.View())
}

// visibleCards renders the cards of the rows on screen.
func (m Model) visibleCards() []string {
	l := m.layout
	if l.Cols <= 0 || len(m.photos) == 0 {
		return nil
	}
	start := m.scrollRow * l.Cols
	end := min(start+l.VisibleRows*l.Cols, len(m.photos))

	styles := m.styles.cardStyles()
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := m.photos[i]
		thumb := m.thumbs.render(p.ID, l.ThumbW, l.ThumbH, m.styles.colorCardBg, m.styles.colorThumbPlaceBg, m.styles.colorFgMuted)
		cards = append(cards, view.RenderCard(view.CardState{
			Thumb:   thumb,
			Author:  p.UserName,
			Likes:   p.Likes,
			Focused: i == m.cursor,
		}, l.CardW, styles))
	}
	return cards
}

func (m Model) infoText() string {
	if len(m.photos) == 0 {
		return ""
	}
	info := fmt.Sprintf("%d photos", len(m.photos))
	if m.shownTerm != "" {
		info += fmt.Sprintf(" for %q", m.shownTerm)
	}
	return info + fmt.Sprintf(" · %d/%d", m.cursor+1, len(m.photos))
}

func (m Model) emptyText() string {
	switch {
	case m.loading:
		return ""
	case m.errMsg != "":
		return "No photos to show"
	case m.shownTerm != "":
		return fmt.Sprintf("No photos found for %q", m.shownTerm)
	default:
		return "No photos"
	}
}

func (m Model) helpText() string {
	switch m.mode {
	case ModeSearch:
		return "type to search · enter search now · esc/tab back to grid · ctrl+c quit"
	case ModeModal:
		return "esc/enter close · y copy image url · t theme"
	}
	help := "←↓↑→/hjkl move · enter open · / search · t theme · r reload · q quit"
	if m.config.UI.Mouse {
		help += " · click a card to open"
	}
	return help
}
