package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/snapsphere/internal/photo"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestThumbCache_Missing(t *testing.T) {
	c := newThumbCache()
	photos := samplePhotos()

	c.store("1", solidImage(4, 4, color.White))
	c.fail("2")

	missing := c.missing(photos)
	if len(missing) != 2 || missing[0].ID != "3" || missing[1].ID != "4" {
		t.Fatalf("missing = %+v, want photos 3 and 4", missing)
	}
}

func TestThumbCache_StoreClearsFailure(t *testing.T) {
	c := newThumbCache()
	c.fail("1")
	c.store("1", solidImage(2, 2, color.Black))
	if c.failed["1"] {
		t.Fatal("stored thumbnail still marked failed")
	}

	c.fail("1")
	if c.failed["1"] {
		t.Fatal("failure recorded over a stored thumbnail")
	}
}

func TestThumbCache_Retain(t *testing.T) {
	c := newThumbCache()
	c.store("1", solidImage(2, 2, color.White))
	c.store("9", solidImage(2, 2, color.White))
	c.fail("8")
	c.render("9", 4, 2, lipgloss.Color("#000000"), lipgloss.Color("#111111"), lipgloss.Color("#ffffff"))

	c.retain([]photo.Photo{{ID: "1"}})

	if _, ok := c.images["9"]; ok {
		t.Fatal("image 9 kept")
	}
	if c.failed["8"] {
		t.Fatal("failure 8 kept")
	}
	if len(c.rendered) != 0 {
		t.Fatalf("rendered = %d entries, want 0", len(c.rendered))
	}
	if !c.has("1") {
		t.Fatal("image 1 dropped")
	}
}

func TestThumbCache_RenderPlaceholders(t *testing.T) {
	c := newThumbCache()
	bg := lipgloss.Color("#000000")
	place := lipgloss.Color("#222222")
	fg := lipgloss.Color("#cccccc")

	out := ansi.Strip(c.render("1", 20, 3, bg, place, fg))
	if !strings.Contains(out, thumbLoadingLabel) {
		t.Fatalf("render = %q, want loading label", out)
	}

	c.fail("1")
	out = ansi.Strip(c.render("1", 20, 3, bg, place, fg))
	if !strings.Contains(out, thumbMissingLabel) {
		t.Fatalf("render = %q, want missing label", out)
	}
}

func TestThumbCache_RenderCaches(t *testing.T) {
	c := newThumbCache()
	c.store("1", solidImage(8, 8, color.RGBA{R: 200, A: 255}))
	bg := lipgloss.Color("#000000")

	first := c.render("1", 6, 3, bg, bg, bg)
	if len(c.rendered) != 1 {
		t.Fatalf("rendered = %d entries, want 1", len(c.rendered))
	}
	if again := c.render("1", 6, 3, bg, bg, bg); again != first {
		t.Fatal("cached render differs")
	}
	if lines := strings.Split(first, "\n"); len(lines) != 3 {
		t.Fatalf("render has %d lines, want 3", len(lines))
	}

	c.resetRendered()
	if len(c.rendered) != 0 {
		t.Fatal("resetRendered kept entries")
	}
}
