package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/snapsphere/internal/config"
	"github.com/javiermolinar/snapsphere/internal/tui"
	"github.com/javiermolinar/snapsphere/internal/tui/commands"
	"github.com/javiermolinar/snapsphere/internal/unsplash"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

var errNoAccessKey = errors.New("no Unsplash access key configured: run `snapsphere config` or set UNSPLASH_ACCESS_KEY")

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	dark    bool
	noColor bool

	// newFetcher builds the API client for one-shot commands.
	newFetcher func() (commands.Fetcher, error)
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}
	a.newFetcher = a.unsplashClient

	a.root = &cobra.Command{
		Use:   "snapsphere",
		Short: "Browse Unsplash photos from the terminal",
		Long: `SnapSphere is a terminal photo gallery for Unsplash.

It shows the latest photos in a grid, searches as you type, and opens
any photo in a detail view with a half-block preview.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if !a.config.HasAccessKey() {
				return errNoAccessKey
			}
			if a.dark {
				a.config.UI.StartDark = true
			}
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.Flags().BoolVar(&a.dark, "dark", false, "Start with the dark theme")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.searchCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "snapsphere %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) unsplashClient() (commands.Fetcher, error) {
	if !a.config.HasAccessKey() {
		return nil, errNoAccessKey
	}
	timeout, err := a.config.RequestTimeout()
	if err != nil {
		return nil, err
	}
	return unsplash.New(a.config.Unsplash.AccessKey,
		unsplash.WithBaseURL(a.config.Unsplash.BaseURL),
		unsplash.WithTimeout(timeout),
	)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
