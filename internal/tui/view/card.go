package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardChromeH is the number of card lines that are not thumbnail: the border
// and the two caption lines.
const CardChromeH = 4

// CardState describes one photo card.
type CardState struct {
	Thumb   string
	Author  string
	Likes   int
	Focused bool
}

// CardStyles groups the styles used by RenderCard.
type CardStyles struct {
	Card          lipgloss.Style
	CardFocused   lipgloss.Style
	Author        lipgloss.Style
	AuthorFocused lipgloss.Style
	Likes         lipgloss.Style
}

// RenderCard draws a bordered card width cells wide. Thumb must already be
// width-2 cells wide.
func RenderCard(card CardState, width int, styles CardStyles) string {
	innerW := width - 2
	if innerW <= 0 {
		return ""
	}

	frame := styles.Card
	author := styles.Author
	if card.Focused {
		frame = styles.CardFocused
		author = styles.AuthorFocused
	}

	lines := []string{
		card.Thumb,
		FitLine(innerW, author, "By: "+card.Author),
		FitLine(innerW, styles.Likes, "♥ "+strconv.Itoa(card.Likes)),
	}
	return frame.Width(innerW).Render(strings.Join(lines, "\n"))
}

// GridState holds rendered cards for the visible rows of the grid.
type GridState struct {
	Cards  []string
	Cols   int
	Gap    int
	InnerW int
	Height int
	Empty  string
	Bg     lipgloss.Color
}

// RenderGrid lays the cards out row by row, Cols per row.
func RenderGrid(state GridState) string {
	if len(state.Cards) == 0 {
		return CenterBox(state.InnerW, state.Height, state.Empty, state.Bg)
	}
	cols := state.Cols
	if cols < 1 {
		cols = 1
	}

	rows := make([]string, 0, (len(state.Cards)+cols-1)/cols)
	for start := 0; start < len(state.Cards); start += cols {
		end := min(start+cols, len(state.Cards))
		cardH := lipgloss.Height(state.Cards[start])
		gap := Spacer(state.Gap, cardH, state.Bg)

		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start && gap != "" {
				parts = append(parts, gap)
			}
			parts = append(parts, state.Cards[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	return PlaceBox(state.InnerW, state.Height, lipgloss.Top, lipgloss.JoinVertical(lipgloss.Left, rows...), state.Bg)
}
