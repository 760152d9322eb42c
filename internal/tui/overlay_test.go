package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlayToggle(t *testing.T) {
	overlay := NewOverlayModel()
	if overlay.Active() {
		t.Fatalf("expected overlay to start inactive")
	}

	overlay.Toggle()
	if !overlay.Active() {
		t.Fatalf("expected overlay to be active after toggle")
	}

	overlay.SetActive(false)
	if overlay.Active() {
		t.Fatalf("expected overlay to be inactive after SetActive(false)")
	}
}

func TestOverlayRenderInactiveReturnsBase(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	got := overlay.Render(base, 10, 2, "content")
	if got != base {
		t.Fatalf("expected base content unchanged when inactive")
	}
}

func TestOverlayFrame(t *testing.T) {
	overlay := NewOverlayModel()
	content := "0123456789\nabc"

	box, inner := overlay.Frame(40, 11, content)
	if box.W != 10+2*overlayMarginX || box.H != 2+2*overlayMarginY {
		t.Fatalf("box = %+v", box)
	}
	if box.X != (40-box.W)/2 || box.Y != (11-box.H)/2 {
		t.Fatalf("box not centered: %+v", box)
	}
	if inner.X != box.X+overlayMarginX || inner.Y != box.Y+overlayMarginY {
		t.Fatalf("inner = %+v, box = %+v", inner, box)
	}
	if inner.W != 10 || inner.H != 2 {
		t.Fatalf("inner size = %dx%d, want 10x2", inner.W, inner.H)
	}
}

func TestOverlayFrame_ClampsToScreen(t *testing.T) {
	overlay := NewOverlayModel()
	box, inner := overlay.Frame(8, 2, strings.Repeat("x", 20)+"\ny\nz")
	if box != (Rect{X: 0, Y: 0, W: 8, H: 2}) {
		t.Fatalf("box = %+v", box)
	}
	if inner.W != 8 || inner.H != 2 {
		t.Fatalf("inner = %+v", inner)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Fatalf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestOverlayRenderAddsOverlay(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#0c0c0c"))
	overlay.Toggle()

	width := 30
	height := 12
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	content := "PHOTO DETAIL"
	got := overlay.Render(base, width, height, content)

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}

	box, _ := overlay.Frame(width, height, content)
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(overlay.bgColor))).String()
	if !strings.Contains(ansi.Strip(got), content) {
		t.Fatalf("expected rendered content to include modal text")
	}

	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("expected line width %d, got %d", width, w)
		}

		hasBg := strings.Contains(line, bgSeq)
		if i >= box.Y && i < box.Y+box.H {
			if !hasBg {
				t.Fatalf("expected overlay background on line %d", i)
			}
		} else if hasBg {
			t.Fatalf("expected no overlay background on line %d", i)
		}
	}
}
