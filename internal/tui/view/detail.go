package view

import (
	"strconv"
	"strings"
)

// DetailState holds the content of the photo detail modal.
type DetailState struct {
	Preview  string
	Likes    int
	ImageURL string
	Width    int
}

// Detail modal button labels.
const (
	DetailCloseLabel = "Close"
	DetailCopyLabel  = "[y] Copy URL"
)

// RenderDetailBody renders the enlarged preview and the photo facts.
func RenderDetailBody(state DetailState, styles ModalStyles) string {
	lines := make([]string, 0, 4)
	if state.Preview != "" {
		lines = append(lines, state.Preview, "")
	}
	lines = append(lines, styles.ModalLabelStyle.Render("Likes: ")+styles.ModalBodyStyle.Render(strconv.Itoa(state.Likes)))
	if state.ImageURL != "" {
		lines = append(lines, FitLine(state.Width, styles.ModalMetaStyle, state.ImageURL))
	}
	return strings.Join(lines, "\n")
}

// DetailFooter renders the buttons of the detail modal.
func DetailFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, DetailCloseLabel, DetailCopyLabel)
}
