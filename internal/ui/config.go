package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/snapsphere/internal/config"
	"github.com/javiermolinar/snapsphere/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  snapsphere config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// prompter reads answers line by line from one reader.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	p := prompter{r: bufio.NewReader(in), w: out}

	// Ask if user wants to edit
	if !p.yesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Unsplash.AccessKey = p.secret("Unsplash access key", cfg.Unsplash.AccessKey)
	cfg.Unsplash.BaseURL = p.value("API base URL", cfg.Unsplash.BaseURL)
	cfg.Unsplash.Timeout = p.value("Request timeout", cfg.Unsplash.Timeout)
	cfg.UI.DarkTheme = p.theme("Dark theme", theme.DarkThemes(), cfg.UI.DarkTheme)
	cfg.UI.LightTheme = p.theme("Light theme", theme.LightThemes(), cfg.UI.LightTheme)
	cfg.UI.StartDark = p.boolean("Start in dark mode", cfg.UI.StartDark)
	cfg.UI.Mouse = p.boolean("Enable mouse", cfg.UI.Mouse)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[unsplash]")
	fmt.Fprintf(w, "  access_key  = %s\n", maskKey(cfg.Unsplash.AccessKey))
	fmt.Fprintf(w, "  base_url    = %s\n", cfg.Unsplash.BaseURL)
	fmt.Fprintf(w, "  timeout     = %s\n", cfg.Unsplash.Timeout)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  dark_theme  = %s\n", cfg.UI.DarkTheme)
	fmt.Fprintf(w, "  light_theme = %s\n", cfg.UI.LightTheme)
	fmt.Fprintf(w, "  start_dark  = %t\n", cfg.UI.StartDark)
	fmt.Fprintf(w, "  mouse       = %t\n", cfg.UI.Mouse)
}

// maskKey hides all but the first characters of an access key.
func maskKey(key string) string {
	key = strings.TrimSpace(key)
	switch {
	case key == "":
		return "(not set)"
	case len(key) <= 4:
		return strings.Repeat("*", len(key))
	default:
		return key[:4] + strings.Repeat("*", len(key)-4)
	}
}

func (p prompter) readLine() string {
	input, _ := p.r.ReadString('\n')
	return strings.TrimSpace(input)
}

func (p prompter) yesNo(question string) bool {
	fmt.Fprintf(p.w, "%s [y/N]: ", question)
	input := strings.ToLower(p.readLine())
	return input == "y" || input == "yes"
}

func (p prompter) value(label, current string) string {
	if current == "" {
		fmt.Fprintf(p.w, "  %s: ", label)
	} else {
		fmt.Fprintf(p.w, "  %s [%s]: ", label, current)
	}
	input := p.readLine()
	if input == "" {
		return current
	}
	return input
}

// secret is value without echoing the current key back.
func (p prompter) secret(label, current string) string {
	fmt.Fprintf(p.w, "  %s [%s]: ", label, maskKey(current))
	input := p.readLine()
	if input == "" {
		return current
	}
	return input
}

func (p prompter) boolean(label string, current bool) bool {
	for {
		input := p.value(label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(input)
		if err == nil {
			return b
		}
		fmt.Fprintf(p.w, "  Invalid value %q. Use true or false.\n", input)
	}
}

func (p prompter) theme(label string, options []string, current string) string {
	list := strings.Join(options, ", ")
	label = fmt.Sprintf("%s (%s)", label, list)
	for {
		value := strings.ToLower(p.value(label, current))
		for _, name := range options {
			if value == name {
				return value
			}
		}
		fmt.Fprintf(p.w, "  Invalid theme %q. Available: %s\n", value, list)
	}
}
