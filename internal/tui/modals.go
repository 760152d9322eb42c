package tui

import "github.com/javiermolinar/snapsphere/internal/tui/view"

const (
	modalMaxWidth = 72
	modalMinWidth = 24
	// Lines taken by the modal around the preview: border, padding, title,
	// spacing, likes, url and footer.
	modalChromeH = 11
)

// modalWidth returns the frame width of the detail modal, excluding border.
func (m Model) modalWidth() int {
	return max(min(modalMaxWidth, m.width-2*overlayMarginX-2), modalMinWidth)
}

// renderModal renders the detail view of the selected photo.
func (m Model) renderModal() string {
	if m.selected == nil {
		return ""
	}
	styles := m.styles.modalStyles()
	width := m.modalWidth()
	// Frame padding takes one cell on each side.
	previewW := width - 2
	previewH := min(max(previewW/3, minThumbH), max(m.height-modalChromeH-2*overlayMarginY, minThumbH))

	p := m.selected
	body := view.RenderDetailBody(view.DetailState{
		Preview:  m.thumbs.render(p.ID, previewW, previewH, m.styles.ModalBgColor, m.styles.colorThumbPlaceBg, m.styles.colorFgMuted),
		Likes:    p.Likes,
		ImageURL: p.ImageURL,
		Width:    previewW,
	}, styles)

	return view.RenderModalFrame(p.UserName, body, view.DetailFooter(styles), width, styles)
}
