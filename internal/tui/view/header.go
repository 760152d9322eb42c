package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderHeight is the number of lines the header occupies.
const HeaderHeight = 3

const (
	headerGap         = 1
	minSearchBoxWidth = 12
)

// HeaderGeometry holds the x offsets of the header controls, relative to the
// inner content area.
type HeaderGeometry struct {
	TitleW     int
	SearchX    int
	SearchW    int
	SearchBtnX int
	SearchBtnW int
	ThemeBtnX  int
	ThemeBtnW  int
}

// LayoutHeader places the title on the left, the theme button flush right and
// lets the search box take the remaining width.
func LayoutHeader(innerW, titleW, searchBtnW, themeBtnW int) HeaderGeometry {
	g := HeaderGeometry{
		TitleW:     titleW,
		SearchBtnW: searchBtnW,
		ThemeBtnW:  themeBtnW,
	}
	g.SearchX = titleW + headerGap
	g.SearchW = innerW - titleW - searchBtnW - themeBtnW - 3*headerGap
	if g.SearchW < minSearchBoxWidth {
		g.SearchW = minSearchBoxWidth
	}
	g.SearchBtnX = g.SearchX + g.SearchW + headerGap
	g.ThemeBtnX = g.SearchBtnX + searchBtnW + headerGap
	return g
}

// HeaderState holds pre-rendered header controls.
type HeaderState struct {
	InnerW    int
	Geometry  HeaderGeometry
	Title     string
	SearchBox string
	SearchBtn string
	ThemeBtn  string
	Bg        lipgloss.Color
}

// RenderHeader joins the header controls into a HeaderHeight tall row.
func RenderHeader(state HeaderState) string {
	g := state.Geometry
	cell := func(w int, content string) string {
		return lipgloss.Place(w, HeaderHeight, lipgloss.Left, lipgloss.Center, content,
			lipgloss.WithWhitespaceBackground(state.Bg))
	}
	gap := Spacer(headerGap, HeaderHeight, state.Bg)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cell(g.TitleW, state.Title),
		gap,
		cell(g.SearchW, state.SearchBox),
		gap,
		cell(g.SearchBtnW, state.SearchBtn),
		gap,
		cell(g.ThemeBtnW, state.ThemeBtn),
	)
	return PadLinesWithBackground(row, state.InnerW, HeaderHeight, state.Bg)
}

// StatusBarState describes the line under the header.
type StatusBarState struct {
	InnerW       int
	Loading      bool
	Spinner      string
	Error        string
	Info         string
	LoadingStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	InfoStyle    lipgloss.Style
	Bg           lipgloss.Color
}

// RenderStatusBar shows the fetch error and the loading indicator. With
// neither present it shows the info text.
func RenderStatusBar(state StatusBarState) string {
	parts := make([]string, 0, 2)
	if state.Error != "" {
		parts = append(parts, state.ErrorStyle.Render(state.Error))
	}
	if state.Loading {
		parts = append(parts, state.LoadingStyle.Render(state.Spinner+" Loading..."))
	}
	if len(parts) == 0 && state.Info != "" {
		parts = append(parts, state.InfoStyle.Render(state.Info))
	}
	sep := lipgloss.NewStyle().Background(state.Bg).Render(strings.Repeat(" ", 3))
	return PadLinesWithBackground(strings.Join(parts, sep), state.InnerW, 1, state.Bg)
}
