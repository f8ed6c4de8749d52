package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/oasview/internal/keybinds"
)

// handleKeyPress routes one key event. ctrl+c always quits no matter
// what the registry says; search mode intercepts everything else so
// typing reaches the filter input instead of global bindings.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Cleanup()
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKeys(msg)
	}

	action, err := m.panes[m.focused].HandleKey(msg)
	if err != nil {
		return m.fail(err)
	}
	return m.dispatch(action)
}

// handleSearchKeys feeds the search overlay. Escape cancels and clears
// the filter, enter keeps it and returns focus to the list, up and down
// move the list cursor behind the prompt. Everything else goes to the
// text input and narrows the list as the query changes. Only the search
// context is consulted so keys like q keep typing instead of quitting.
func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, _ := m.registry.MatchExact(keybinds.ContextSearch, msg.String())
	switch action {
	case keybinds.ActionCancel:
		m.closeSearch(true)
		return m, nil
	case keybinds.ActionSubmit:
		m.closeSearch(false)
		return m, nil
	case keybinds.ActionNavigateUp, keybinds.ActionNavigateDown:
		if _, err := m.navigationPane().Update(action); err != nil {
			return m.fail(err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.navigationPane().SetFilter(m.searchInput.Value())
	return m, cmd
}

// handleMouse routes mouse events: a left click focuses the pane under
// the pointer, the wheel scrolls the focused pane.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.setFocus(m.paneAt(msg.X, msg.Y))
	}

	action, err := m.panes[m.focused].HandleMouse(msg)
	if err != nil {
		return m.fail(err)
	}
	return m.dispatch(action)
}

// paneAt maps terminal coordinates to the pane drawn there: navigation
// fills the left column, request and response stack on the right.
func (m *Model) paneAt(x, y int) int {
	if x < m.navWidth() {
		return paneNavigation
	}
	if y < m.contentHeight()/2 {
		return paneRequest
	}
	return paneResponse
}
