package tui

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/oasview/internal/highlight"
	"github.com/studiowebux/oasview/internal/history"
	"github.com/studiowebux/oasview/internal/keybinds"
	"github.com/studiowebux/oasview/internal/logging"
	"github.com/studiowebux/oasview/internal/openapi"
)

// Model is the controller: it owns the panes, the focus, and the shared
// state, and drives everything from the bubbletea update loop.
type Model struct {
	// Collaborators shared by every pane.
	state    *State
	registry *keybinds.Registry
	builder  *highlight.Builder
	log      *logging.Logger
	recorder *history.Recorder

	// Pane order is the tab order: navigation, request, response.
	panes   []Pane
	names   []string
	focused int

	// Document origin, for reloads and the status bar.
	source  string
	opCount int
	watcher *Watcher

	// Search overlay.
	searching   bool
	searchInput textinput.Model

	// Terminal geometry.
	width  int
	height int

	// Transient feedback for the status bar.
	statusMessage string
	errorMessage  string

	// First fatal pane error; Run returns it after the loop stops.
	fatalErr error
	cleaned  bool

	navPercent int
	version    string
}

// Init arms the file watcher when there is one.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update is the single consumer of every event: input, resizes, and
// watcher signals all pass through here one at a time.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = max(m.width-10, 20)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case documentChangedMsg:
		model, cmd := m.reloadDocument()
		if m.fatalErr != nil {
			return model, cmd
		}
		return model, tea.Batch(cmd, m.waitForChange())
	}
	return m, nil
}

// View renders the whole frame. Draw only reads, so a frame can always
// be produced, even right after an error.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	return m.renderMain()
}

// dispatch routes one Action. Scrolling and tab cycling go to the
// focused pane; a follow-up Update is broadcast to every pane.
func (m *Model) dispatch(action keybinds.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keybinds.ActionNone:
		return m, nil
	case keybinds.ActionQuit:
		m.Cleanup()
		return m, tea.Quit
	case keybinds.ActionFocusNext:
		return m.setFocus((m.focused + 1) % len(m.panes))
	case keybinds.ActionFocusPrev:
		return m.setFocus((m.focused + len(m.panes) - 1) % len(m.panes))
	case keybinds.ActionOpenSearch:
		return m.openSearch()
	case keybinds.ActionReload:
		return m.reloadDocument()
	case keybinds.ActionYank:
		m.yankFocused()
		return m, nil
	default:
		followUp, err := m.panes[m.focused].Update(action)
		if err != nil {
			return m.fail(err)
		}
		if followUp == keybinds.ActionUpdate {
			if action == keybinds.ActionSubmit {
				m.recordSelection()
			}
			if err := m.broadcast(keybinds.ActionUpdate); err != nil {
				return m.fail(err)
			}
		}
		return m, nil
	}
}

// broadcast delivers an Action to every pane in order. The first error
// aborts: panes are not isolated from each other, a failure anywhere
// stops the update.
func (m *Model) broadcast(action keybinds.Action) error {
	for i, pane := range m.panes {
		if _, err := pane.Update(action); err != nil {
			return fmt.Errorf("%s pane: %w", m.names[i], err)
		}
	}
	return nil
}

// setFocus moves focus to the pane at target. Unfocus and Focus run as
// a pair so exactly one pane is focused at any time.
func (m *Model) setFocus(target int) (tea.Model, tea.Cmd) {
	if target == m.focused {
		return m, nil
	}
	if err := m.panes[m.focused].Unfocus(); err != nil {
		return m.fail(err)
	}
	if err := m.panes[target].Focus(); err != nil {
		return m.fail(err)
	}
	m.focused = target
	return m, nil
}

// openSearch moves focus to the navigation pane and raises the filter
// prompt.
func (m *Model) openSearch() (tea.Model, tea.Cmd) {
	if model, cmd := m.setFocus(paneNavigation); m.fatalErr != nil {
		return model, cmd
	}
	m.searching = true
	m.searchInput.Focus()
	return m, textinput.Blink
}

// closeSearch dismisses the filter prompt, clearing the filter when the
// search was cancelled rather than accepted.
func (m *Model) closeSearch(clear bool) {
	m.searching = false
	m.searchInput.Blur()
	if clear {
		m.searchInput.SetValue("")
		m.navigationPane().SetFilter("")
	}
}

// reloadDocument reloads the source document. A load failure keeps the
// current document and reports on the status line; the document may be
// mid-save. Pane failures during the rebroadcast are fatal like any
// other pane error.
func (m *Model) reloadDocument() (tea.Model, tea.Cmd) {
	doc, err := openapi.Load(m.source)
	if err != nil {
		m.log.Warn("document reload failed", "source", m.source, "error", err)
		m.setErrorMessage(fmt.Sprintf("Reload failed: %v", err))
		return m, nil
	}

	m.state.SetDocument(doc)
	if err := m.broadcast(keybinds.ActionUpdate); err != nil {
		return m.fail(err)
	}

	m.opCount = len(doc.Operations())
	m.log.Info("document reloaded", "source", m.source, "operations", m.opCount)
	m.setStatusMessage(fmt.Sprintf("Reloaded %s (%d operations)", m.source, m.opCount))
	return m, nil
}

// recordSelection notes the newly selected operation in history.
// Recording is best-effort: a failure is logged and the viewer moves
// on.
func (m *Model) recordSelection() {
	sel, ok := m.state.Selection()
	if !ok {
		return
	}
	if err := m.recorder.RecordView(m.source, sel.Path, sel.Method); err != nil {
		m.log.Warn("history record failed", "error", err)
	}
}

// yankFocused copies the focused pane's yankable text to the system
// clipboard.
func (m *Model) yankFocused() {
	pane, ok := m.panes[m.focused].(yanker)
	if !ok {
		return
	}
	label, text, ok := pane.yankText()
	if !ok {
		m.setStatusMessage("Nothing to copy")
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.setErrorMessage(fmt.Sprintf("Clipboard unavailable: %v", err))
		return
	}
	m.setStatusMessage(fmt.Sprintf("Copied %s", label))
}

// fail records the first fatal error and stops the loop. Run surfaces
// the error once after the program exits.
func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	if m.fatalErr == nil {
		m.fatalErr = err
	}
	m.log.Error("fatal pane error", "error", err)
	m.Cleanup()
	return m, tea.Quit
}

// waitForChange blocks until the watcher reports a change and feeds it
// into the update loop. Re-armed by the documentChangedMsg handler.
func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		if _, ok := <-w.Changed(); !ok {
			return nil
		}
		return documentChangedMsg{}
	}
}

// setStatusMessage sets the transient status line, truncating long
// messages so the bar never wraps.
func (m *Model) setStatusMessage(msg string) {
	if len(msg) > maxStatusMessageLen {
		msg = msg[:maxStatusMessageLen-3] + "..."
	}
	m.statusMessage = msg
	m.errorMessage = ""
}

// setErrorMessage sets the transient error line, truncating long
// messages so the bar never wraps.
func (m *Model) setErrorMessage(msg string) {
	if len(msg) > maxStatusMessageLen {
		msg = msg[:maxStatusMessageLen-3] + "..."
	}
	m.errorMessage = msg
	m.statusMessage = ""
}

// navigationPane returns the operation list pane.
func (m *Model) navigationPane() *NavigationPane {
	return m.panes[paneNavigation].(*NavigationPane)
}

// Cleanup releases the watcher, the history recorder, and the log file.
// Safe to call more than once; quit can arrive on several paths.
func (m *Model) Cleanup() {
	if m.cleaned {
		return
	}
	m.cleaned = true

	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.log.Warn("watcher close failed", "error", err)
		}
		m.watcher = nil
	}
	if err := m.recorder.Close(); err != nil {
		m.log.Warn("history close failed", "error", err)
	}
	if err := m.log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
}

// documentChangedMsg reports that the watcher saw the document change
// on disk.
type documentChangedMsg struct{}
