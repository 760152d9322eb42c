package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMarginX = 2
	overlayMarginY = 1
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// OverlayModel renders modal content centered on a backdrop over the base view.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{
		active:  false,
		bgColor: lipgloss.Color(""),
	}
}

// Toggle flips the overlay visibility.
func (o *OverlayModel) Toggle() {
	o.active = !o.active
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the backdrop color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Frame returns the backdrop box and the content region inside it for
// content drawn on a width x height screen.
func (o OverlayModel) Frame(width, height int, content string) (box, inner Rect) {
	contentW, contentH := o.contentSize(o.contentLines(content))
	if width <= 0 || height <= 0 || contentW == 0 || contentH == 0 {
		return Rect{}, Rect{}
	}

	box.W = min(contentW+2*overlayMarginX, width)
	box.H = min(contentH+2*overlayMarginY, height)
	box.X = max((width-box.W)/2, 0)
	box.Y = max((height-box.H)/2, 0)

	inner.W = min(contentW, box.W)
	inner.H = min(contentH, box.H)
	inner.X = box.X + (box.W-inner.W)/2
	inner.Y = box.Y + (box.H-inner.H)/2
	return box, inner
}

// Render draws the overlay on top of base content.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active {
		return base
	}
	box, inner := o.Frame(width, height, content)
	if box.W <= 0 || box.H <= 0 {
		return base
	}

	baseLines := o.normalizeBase(base, width, height)
	overlayLines := o.overlayLines(box.W, box.H)
	overlayLines = o.applyContent(overlayLines, o.contentLines(content), inner.X-box.X, inner.Y-box.Y, inner.W, inner.H)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < box.Y || row >= box.Y+box.H {
			lines = append(lines, baseLines[row])
			continue
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, box.X)
		rightSlice := ansi.Cut(baseLine, box.X+box.W, width)
		lines = append(lines, leftSlice+overlayLines[row-box.Y]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func (o OverlayModel) bgSeq() string {
	if o.bgColor == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

func (o OverlayModel) overlayLines(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	line := o.bgSeq() + strings.Repeat(" ", width) + ansi.ResetStyle
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

func (o OverlayModel) applyContent(lines, content []string, left, top, contentW, contentH int) []string {
	if len(lines) == 0 || len(content) == 0 || contentW <= 0 || contentH <= 0 {
		return lines
	}

	bgSeq := o.bgSeq()
	boxW := lipgloss.Width(lines[0])
	for i := 0; i < contentH && i < len(content); i++ {
		idx := top + i
		if idx >= len(lines) {
			break
		}
		line := content[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentW {
			line = ansi.Cut(line, 0, contentW)
			lineWidth = contentW
		}
		if lineWidth < contentW {
			line += strings.Repeat(" ", contentW-lineWidth)
		}
		line = o.applyOverlayBackgroundResets(line, bgSeq)

		rightPad := max(boxW-left-contentW, 0)
		lines[idx] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}

	return lines
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	return maxWidth, len(lines)
}

func (o OverlayModel) applyOverlayBackgroundResets(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

func (o OverlayModel) normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
