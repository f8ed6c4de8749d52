package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/oasview/internal/config"
	"github.com/studiowebux/oasview/internal/highlight"
	"github.com/studiowebux/oasview/internal/history"
	"github.com/studiowebux/oasview/internal/keybinds"
	"github.com/studiowebux/oasview/internal/logging"
	"github.com/studiowebux/oasview/internal/openapi"
)

// Options configures the viewer.
type Options struct {
	// Source is the file path or URL of the document to view.
	Source string

	// Config supplies theme and layout settings; nil uses defaults.
	Config *config.Config

	// Registry maps keys to actions; nil uses the default bindings.
	Registry *keybinds.Registry

	// Recorder receives open and selection events; nil disables
	// history.
	Recorder *history.Recorder

	// Logger receives structured debug output; nil discards it.
	Logger *logging.Logger

	// Watch reloads the document when the file changes on disk. URLs
	// are never watched.
	Watch bool

	// Version is shown by the version command; the viewer carries it
	// for parity.
	Version string
}

// New loads the document and assembles the viewer model. A document
// that fails to load is a startup error, not a running viewer with an
// error line.
func New(opts Options) (Model, error) {
	doc, err := openapi.Load(opts.Source)
	if err != nil {
		return Model{}, err
	}
	return assemble(doc, opts)
}

// assemble builds the model around an already loaded document. Split
// from New so tests can construct viewers without touching disk.
func assemble(doc *openapi.Document, opts Options) (Model, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Registry == nil {
		opts.Registry = keybinds.NewDefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	state := NewState(doc)
	builder := highlight.NewBuilder(opts.Config.Viewer.Theme)

	searchInput := textinput.New()
	searchInput.Placeholder = "filter operations"
	searchInput.Prompt = "/ "
	searchInput.CharLimit = searchInputCharLimit

	m := Model{
		state:       state,
		registry:    opts.Registry,
		builder:     builder,
		log:         opts.Logger,
		recorder:    opts.Recorder,
		source:      opts.Source,
		opCount:     len(doc.Operations()),
		searchInput: searchInput,
		navPercent:  opts.Config.Viewer.NavWidthPercent,
		version:     opts.Version,
	}

	m.panes = []Pane{
		NewNavigationPane(state, opts.Registry, opts.Logger.WithPane("navigation")),
		NewRequestPane(state, opts.Registry, builder, opts.Logger.WithPane("request")),
		NewResponsePane(state, opts.Registry, builder, opts.Logger.WithPane("response")),
	}
	m.names = []string{"navigation", "request", "response"}

	for i, pane := range m.panes {
		if err := pane.Init(); err != nil {
			return Model{}, fmt.Errorf("init %s pane: %w", m.names[i], err)
		}
	}
	if err := m.panes[m.focused].Focus(); err != nil {
		return Model{}, fmt.Errorf("focus %s pane: %w", m.names[m.focused], err)
	}

	if opts.Watch && !openapi.IsURL(opts.Source) {
		watcher, err := NewWatcher(opts.Source, opts.Logger)
		if err != nil {
			opts.Logger.Warn("live reload unavailable", "source", opts.Source, "error", err)
		} else {
			m.watcher = watcher
		}
	}

	if err := opts.Recorder.RecordOpen(opts.Source); err != nil {
		opts.Logger.Warn("history record failed", "error", err)
	}

	opts.Logger.Info("viewer ready", "source", opts.Source, "operations", m.opCount)
	return m, nil
}

// Run assembles the viewer and drives the program to completion. The
// returned error is either a startup failure or the single fatal error
// that stopped the update loop.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		m.Cleanup()
		return fmt.Errorf("terminal program failed: %w", err)
	}

	m.Cleanup()
	return m.fatalErr
}
