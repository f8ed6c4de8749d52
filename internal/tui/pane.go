package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/oasview/internal/keybinds"
)

// Pane is one focusable region of the viewer. The controller owns the
// lifecycle: Init runs once before the first draw, and Unfocus/Focus
// run as a pair on every focus transfer so exactly one pane is focused
// at any time.
//
// HandleKey and HandleMouse translate raw input into an Action and must
// not mutate anything. Update is the only mutation point; it applies
// one Action and may return a follow-up Action for the controller to
// dispatch (Submit answers with Update, which the controller broadcasts
// to every pane). Update with the same Action under unchanged shared
// state must produce the same pane state. Draw renders into the given
// box and only reads.
//
// Errors from any method are fatal to the program; panes do not recover
// on each other's behalf.
type Pane interface {
	Init() error
	Focus() error
	Unfocus() error
	HandleKey(msg tea.KeyMsg) (keybinds.Action, error)
	HandleMouse(msg tea.MouseMsg) (keybinds.Action, error)
	Update(action keybinds.Action) (keybinds.Action, error)
	Draw(width, height int) (string, error)
}

// yanker is implemented by panes that have something to copy to the
// clipboard. The controller owns the clipboard itself.
type yanker interface {
	yankText() (label, text string, ok bool)
}

// wheelAction maps mouse wheel events to navigation actions. Every pane
// scrolls the same way, so they share the translation.
func wheelAction(msg tea.MouseMsg) keybinds.Action {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return keybinds.ActionNavigateUp
	case tea.MouseButtonWheelDown:
		return keybinds.ActionNavigateDown
	}
	return keybinds.ActionNone
}
