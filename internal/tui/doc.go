/*
Package tui implements the interactive OpenAPI viewer.

# Overview

The viewer is three panes around one piece of shared state. The
navigation pane lists the document's operations; the request and
response panes render the selected operation's schemas as highlighted
YAML. Selecting an operation replaces the shared state and every pane
rebuilds from it.

# Key Concepts

  - Model: the controller. Owns the pane list, the focus index, and the
    bubbletea update loop. Routes input to the focused pane and
    dispatches the Actions panes return.
  - Pane: one focusable region. HandleKey and HandleMouse translate raw
    input to an Action without touching anything; Update is the only
    mutation point; Draw only reads.
  - State: the navigation state shared by every pane, a document plus
    the selected operation behind a reader/writer lock. Writes replace
    whole values.
  - Action: a small vocabulary of intents (navigate, submit, update,
    yank, ...) defined in internal/keybinds. Submit's follow-up Update
    is broadcast to all panes so each resynchronizes its cache.

# Update Flow

	key press -> focused pane HandleKey -> Action
	Action    -> focused pane Update    -> follow-up Action
	Update    -> broadcast: every pane rebuilds from State

Schema panes rebuild by resolving the active operation's schema,
serializing it to canonical YAML, and highlighting it; the result
replaces the pane's line cache and the cursor returns to the top. A
failure anywhere in that pipeline aborts the rebuild with the old cache
intact and stops the program: panes are not isolated from each other.

# Concurrency

The bubbletea program is the single consumer: update and draw never
overlap. The file watcher and terminal input feed it asynchronously.
State is the only value touched from more than one goroutine and is
locked accordingly.
*/
package tui
