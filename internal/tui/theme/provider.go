package theme

import "fmt"

const (
	labelLight = "Light Mode"
	labelDark  = "Dark Mode"
)

// Provider owns the session's dark-mode flag and the two themes it switches
// between. It is passed to whoever renders; Toggle is the only mutator.
type Provider struct {
	dark   *Theme
	light  *Theme
	isDark bool
}

// NewProvider loads the named dark and light themes.
func NewProvider(darkName, lightName string, startDark bool) (*Provider, error) {
	if darkName == "" {
		darkName = DefaultDark
	}
	if lightName == "" {
		lightName = DefaultLight
	}

	dark, err := Load(darkName)
	if err != nil {
		return nil, fmt.Errorf("loading dark theme: %w", err)
	}
	light, err := Load(lightName)
	if err != nil {
		return nil, fmt.Errorf("loading light theme: %w", err)
	}

	return &Provider{dark: dark, light: light, isDark: startDark}, nil
}

// IsDark reports whether dark mode is active.
func (p *Provider) IsDark() bool {
	return p.isDark
}

// Toggle flips between dark and light mode.
func (p *Provider) Toggle() {
	p.isDark = !p.isDark
}

// Current returns the active theme.
func (p *Provider) Current() *Theme {
	if p.isDark {
		return p.dark
	}
	return p.light
}

// ToggleLabel is the label of the button that switches modes: it names the
// mode the button switches to.
func (p *Provider) ToggleLabel() string {
	if p.isDark {
		return labelLight
	}
	return labelDark
}

// ModeName returns "dark" or "light".
func (p *Provider) ModeName() string {
	if p.isDark {
		return "dark"
	}
	return "light"
}
