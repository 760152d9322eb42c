// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

const (
	// DefaultDark is used when no dark theme is configured.
	DefaultDark = "mocha"
	// DefaultLight is used when no light theme is configured.
	DefaultLight = "latte"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Card background
	BgSelection string `toml:"bg_selection"` // Focused card, buttons
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Secondary text, placeholders
	Accent      string `toml:"accent"`       // Title, primary accent, borders
	Likes       string `toml:"likes"`        // Heart glyph
	Error       string `toml:"error"`        // Inline fetch error
	Warning     string `toml:"warning"`      // Status messages

	// Modal palette (can override base theme values)
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultDark
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != DefaultDark {
			return Load(DefaultDark)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// IsLight reports whether the theme has a light background.
func (t *Theme) IsLight() bool {
	return isLightTheme(t.Bg)
}

// ModalPalette provides the modal-specific colors derived from the theme.
type ModalPalette struct {
	BaseBg      string
	ModalBorder string
	TextPrimary string
	TextMuted   string
	Highlight   string
}

// Modal returns the modal palette, falling back to base theme colors when needed.
func (t *Theme) Modal() ModalPalette {
	return ModalPalette{
		BaseBg:      coalesce(t.BaseBg, t.BgHighlight, t.Bg),
		ModalBorder: coalesce(t.ModalBorder, t.Accent),
		TextPrimary: coalesce(t.TextPrimary, t.Fg),
		TextMuted:   coalesce(t.TextMuted, t.FgMuted),
		Highlight:   coalesce(t.Highlight, t.BgSelection, t.Accent),
	}
}

func (t *Theme) applyDefaults() {
	if t.BaseBg == "" {
		t.BaseBg = coalesce(t.BgHighlight, t.Bg)
	}
	if t.ModalBorder == "" {
		t.ModalBorder = t.Accent
	}
	if t.TextPrimary == "" {
		t.TextPrimary = t.Fg
	}
	if t.TextMuted == "" {
		t.TextMuted = t.FgMuted
	}
	if t.Highlight == "" {
		t.Highlight = coalesce(t.BgSelection, t.Accent)
	}
	if t.Error == "" {
		t.Error = coalesce(t.Likes, t.Warning)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// DarkThemes returns the names of the dark themes.
func DarkThemes() []string {
	return []string{"mocha", "macchiato", "frappe"}
}

// LightThemes returns the names of the light themes.
func LightThemes() []string {
	return []string{"latte", "light"}
}

// Available returns a list of available theme names.
func Available() []string {
	return append(DarkThemes(), LightThemes()...)
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	return contains(Available(), name)
}

// IsDarkTheme reports whether name is one of the dark themes.
func IsDarkTheme(name string) bool {
	return contains(DarkThemes(), name)
}

// IsLightTheme reports whether name is one of the light themes.
func IsLightTheme(name string) bool {
	return contains(LightThemes(), name)
}

func contains(names []string, name string) bool {
	name = strings.ToLower(name)
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
