package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/snapsphere/internal/config"
	"github.com/javiermolinar/snapsphere/internal/photo"
	"github.com/javiermolinar/snapsphere/internal/tui/commands"
	"github.com/javiermolinar/snapsphere/internal/tui/theme"
	"github.com/javiermolinar/snapsphere/internal/unsplash"
)

const (
	appTitle          = "SnapSphere"
	searchButtonLabel = "Search"
	searchPlaceholder = "Search Photos..."

	// searchDebounce is how long the search box must be idle before an
	// edit triggers a fetch.
	searchDebounce = 350 * time.Millisecond
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeBrowse Mode = iota // Moving between cards
	ModeSearch             // Typing in the search box
	ModeModal              // Photo detail open
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "BROWSE"
	case ModeSearch:
		return "SEARCH"
	case ModeModal:
		return "MODAL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(m))
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	fetcher commands.Fetcher
	config  *config.Config
	ctx     context.Context

	// Theme and styles
	themes *theme.Provider
	styles *Styles

	mode Mode

	// Search
	search     textinput.Model
	searchTerm string
	shownTerm  string // term of the photos on screen
	editSeq    uint64 // bumped on every edit; only the newest debounce fetches

	// Gallery state. showModal implies selected != nil.
	photos    []photo.Photo
	selected  *photo.Photo
	showModal bool
	loading   bool
	errMsg    string

	// In-flight fetch. Results tagged with another seq are stale.
	fetchSeq    uint64
	fetchCtx    context.Context
	cancelFetch context.CancelFunc

	thumbs *thumbCache

	cursor    int
	scrollRow int

	// Components
	spinner spinner.Model
	overlay OverlayModel

	// Terminal dimensions and layout
	width  int
	height int
	layout Layout

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithContext sets the parent context of every fetch.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New creates a new TUI model. The first fetch is issued by Init.
func New(fetcher commands.Fetcher, cfg *config.Config, themes *theme.Provider, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	search := textinput.New()
	search.Placeholder = searchPlaceholder
	search.Prompt = "› "
	search.CharLimit = 120

	m := &Model{
		fetcher: fetcher,
		config:  cfg,
		ctx:     context.Background(),
		themes:  themes,
		styles:  NewStyles(themes.Current()),
		mode:    ModeBrowse,
		search:  search,
		loading: true,
		thumbs:  newThumbCache(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		overlay: NewOverlayModel(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.fetchSeq = 1
	m.fetchCtx, m.cancelFetch = context.WithCancel(m.ctx)
	m.applyStyles()
	return m
}

// Init initializes the model and requests the default listing.
func (m Model) Init() tea.Cmd {
	LogFetch("FETCH_START", m.fetchSeq, m.searchTerm, nil)
	return tea.Batch(
		m.spinner.Tick,
		commands.FetchPhotos(m.fetchCtx, m.fetcher, m.fetchSeq, m.searchTerm),
	)
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return err
	}
	client, err := unsplash.New(cfg.Unsplash.AccessKey,
		unsplash.WithBaseURL(cfg.Unsplash.BaseURL),
		unsplash.WithTimeout(timeout),
		unsplash.WithLogger(DebugLogger()),
	)
	if err != nil {
		return err
	}
	themes, err := theme.NewProvider(cfg.UI.DarkTheme, cfg.UI.LightTheme, cfg.UI.StartDark)
	if err != nil {
		return err
	}

	model := *New(client, cfg, themes)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok && m.cancelFetch != nil {
		m.cancelFetch()
	}
	return err
}

// applyStyles pushes the current styles into the components.
func (m *Model) applyStyles() {
	fieldBg := m.styles.colorBgHighlight
	m.search.PromptStyle = m.styles.SearchPromptStyle.Background(fieldBg)
	m.search.TextStyle = m.styles.SearchTextStyle.Background(fieldBg)
	m.search.PlaceholderStyle = m.styles.SearchPlaceholderStyle.Background(fieldBg)
	m.search.Cursor.Style = m.styles.SearchCursorStyle
	m.spinner.Style = m.styles.SpinnerStyle
	m.overlay.SetBackground(m.styles.ModalBackdropColor)
}

// relayout recomputes the screen geometry for the current size and styles.
func (m *Model) relayout() {
	titleW := lipgloss.Width(m.styles.TitleStyle.Render(appTitle))
	searchBtnW := lipgloss.Width(m.styles.ButtonStyle.Render(searchButtonLabel))
	themeBtnW := lipgloss.Width(m.styles.ThemeButtonStyle.Render(m.themes.ToggleLabel()))
	m.layout = computeLayout(m.width, m.height, titleW, searchBtnW, themeBtnW)

	// Box border and padding take four cells, the cursor one more.
	promptW := lipgloss.Width(m.search.Prompt)
	m.search.Width = max(m.layout.Header.SearchW-4-promptW-1, 1)
	m.scrollRow = m.layout.scrollFor(m.cursor, m.scrollRow, len(m.photos))
}
