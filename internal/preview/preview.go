// Package preview renders images as terminal half-block art.
package preview

import (
	"fmt"
	"image"
	"strings"

	"github.com/muesli/termenv"
	"github.com/nfnt/resize"
)

const halfBlock = "▀"

// Render draws img into a width x height cell box. Each cell shows two
// vertical pixels: the upper half as foreground, the lower half as background.
// The image keeps its aspect ratio and is centered; padding uses bg when set.
func Render(img image.Image, width, height int, bg string) string {
	return RenderWithProfile(img, width, height, bg, termenv.TrueColor)
}

// RenderWithProfile is Render with an explicit color profile.
func RenderWithProfile(img image.Image, width, height int, bg string, profile termenv.Profile) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}

	thumb := resize.Thumbnail(uint(width), uint(height*2), img, resize.Bilinear)
	tb := thumb.Bounds()
	cols := min(tb.Dx(), width)
	rows := min((tb.Dy()+1)/2, height)

	padTop := (height - rows) / 2
	padLeft := (width - cols) / 2
	padRight := width - cols - padLeft

	blank := pad(width, bg, profile)
	left := pad(padLeft, bg, profile)
	right := pad(padRight, bg, profile)

	lines := make([]string, 0, height)
	for i := 0; i < padTop; i++ {
		lines = append(lines, blank)
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		sb.Reset()
		sb.WriteString(left)
		y := tb.Min.Y + row*2
		for col := 0; col < cols; col++ {
			x := tb.Min.X + col
			top := hexAt(thumb, x, y)
			bottom := top
			if y+1 < tb.Max.Y {
				bottom = hexAt(thumb, x, y+1)
			} else if bg != "" {
				bottom = bg
			}
			sb.WriteString(profile.String(halfBlock).
				Foreground(profile.Color(top)).
				Background(profile.Color(bottom)).
				String())
		}
		sb.WriteString(right)
		lines = append(lines, sb.String())
	}

	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// Placeholder fills a width x height box with a centered label.
func Placeholder(width, height int, label, fg, bg string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	profile := termenv.TrueColor
	blank := pad(width, bg, profile)
	if len([]rune(label)) > width {
		label = string([]rune(label)[:width])
	}

	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}

	labelW := len([]rune(label))
	left := (width - labelW) / 2
	style := profile.String(label)
	if fg != "" {
		style = style.Foreground(profile.Color(fg))
	}
	if bg != "" {
		style = style.Background(profile.Color(bg))
	}
	lines[height/2] = pad(left, bg, profile) + style.String() + pad(width-labelW-left, bg, profile)
	return strings.Join(lines, "\n")
}

func pad(n int, bg string, profile termenv.Profile) string {
	if n <= 0 {
		return ""
	}
	spaces := strings.Repeat(" ", n)
	if bg == "" {
		return spaces
	}
	return profile.String(spaces).Background(profile.Color(bg)).String()
}

func hexAt(img image.Image, x, y int) string {
	r, g, b, _ := img.At(x, y).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
