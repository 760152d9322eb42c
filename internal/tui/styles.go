// Package tui provides the terminal user interface for snapsphere.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/snapsphere/internal/tui/theme"
	"github.com/javiermolinar/snapsphere/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorLikes       lipgloss.Color
	colorError       lipgloss.Color
	colorWarning     lipgloss.Color

	colorCardBg       lipgloss.Color
	colorThumbPlaceBg lipgloss.Color

	// Title style
	TitleStyle lipgloss.Style

	// Search box
	SearchBoxStyle         lipgloss.Style
	SearchBoxFocusedStyle  lipgloss.Style
	SearchPromptStyle      lipgloss.Style
	SearchTextStyle        lipgloss.Style
	SearchPlaceholderStyle lipgloss.Style
	SearchCursorStyle      lipgloss.Style

	// Header buttons
	ButtonStyle      lipgloss.Style
	ThemeButtonStyle lipgloss.Style

	// Status bar under the header
	ErrorStyle   lipgloss.Style
	LoadingStyle lipgloss.Style
	SpinnerStyle lipgloss.Style
	InfoStyle    lipgloss.Style

	// Photo cards
	CardStyle          lipgloss.Style
	CardFocusedStyle   lipgloss.Style
	CardAuthorStyle    lipgloss.Style
	CardAuthorFocused  lipgloss.Style
	CardLikesStyle     lipgloss.Style
	EmptyGridTextStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorLikes = palette.Likes
	s.colorError = palette.Error
	s.colorWarning = palette.Warning
	s.colorCardBg = palette.CardBg
	s.colorThumbPlaceBg = palette.ThumbPlaceBg

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	// Search box: same frame as the prompt box, accent border when focused
	s.SearchBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.SearchBoxFocusedStyle = s.SearchBoxStyle.
		BorderForeground(s.colorAccent)

	s.SearchPromptStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.SearchTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.SearchPlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.SearchCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.ButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(palette.ButtonActiveBg).
		Padding(0, 1)

	s.ThemeButtonStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnButton).
		Background(palette.ButtonBg).
		Padding(0, 1)

	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorError).
		Background(s.colorBg)

	s.LoadingStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.SpinnerStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.InfoStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Cards: the border carries focus, the body keeps the card background
	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBgSelection).
		BorderBackground(s.colorBg).
		Background(s.colorCardBg)

	s.CardFocusedStyle = s.CardStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(s.colorAccent)

	s.CardAuthorStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorCardBg)

	s.CardAuthorFocused = s.CardAuthorStyle.
		Foreground(s.colorAccent).
		Bold(true)

	s.CardLikesStyle = lipgloss.NewStyle().
		Foreground(s.colorLikes).
		Background(s.colorCardBg)

	s.EmptyGridTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(72).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorLikes).
		Bold(true).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Panel).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight).
		Bold(true).
		Padding(0, 2)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, appPadX)

	return s
}

// modalStyles returns the subset of styles used by view modal helpers.
func (s *Styles) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalButtonStyle,
		ModalButtonActiveStyle: s.ModalButtonActiveStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
		ModalMetaStyle:         s.ModalMetaStyle,
		ModalLabelStyle:        s.ModalLabelStyle,
	}
}

func (s *Styles) cardStyles() view.CardStyles {
	return view.CardStyles{
		Card:          s.CardStyle,
		CardFocused:   s.CardFocusedStyle,
		Author:        s.CardAuthorStyle,
		AuthorFocused: s.CardAuthorFocused,
		Likes:         s.CardLikesStyle,
	}
}
