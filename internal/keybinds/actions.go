package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal     Context = "global"     // Available everywhere
	ContextNavigation Context = "navigation" // Operation list pane
	ContextSchema     Context = "schema"     // Request/response schema panes
	ContextSearch     Context = "search"     // Search input overlay
)

const (
	// ActionNone is returned when no binding matches a key
	ActionNone Action = ""

	// Global actions
	ActionQuit   Action = "quit"   // Quit application
	ActionReload Action = "reload" // Reload document from disk

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"    // Move up one item/line
	ActionNavigateDown Action = "navigate_down"  // Move down one item/line
	ActionPageUp       Action = "page_up"        // Move up one page
	ActionPageDown     Action = "page_down"      // Move down one page
	ActionHalfPageUp   Action = "half_page_up"   // Move up half page (ctrl+u)
	ActionHalfPageDown Action = "half_page_down" // Move down half page (ctrl+d)
	ActionGoToTop      Action = "go_to_top"      // Go to top
	ActionGoToBottom   Action = "go_to_bottom"   // Go to bottom

	// Selection and propagation
	ActionSubmit Action = "submit" // Confirm current item (select operation)
	ActionUpdate Action = "update" // Shared state changed; panes rebuild

	// Focus switching
	ActionFocusNext Action = "focus_next"     // Focus next pane
	ActionFocusPrev Action = "focus_previous" // Focus previous pane

	// Search overlay
	ActionOpenSearch Action = "open_search" // Open search input
	ActionCancel     Action = "cancel"      // Dismiss search input

	// Pane operations
	ActionYank           Action = "yank"             // Copy pane content to clipboard
	ActionCycleMediaType Action = "cycle_media_type" // Next media type tab
	ActionCycleStatus    Action = "cycle_status"     // Next response status tab
)

// knownActions is the set of actions a configuration file may bind.
// ActionUpdate is deliberately absent: it is emitted by the controller,
// never triggered by a key.
var knownActions = map[Action]bool{
	ActionQuit:           true,
	ActionReload:         true,
	ActionNavigateUp:     true,
	ActionNavigateDown:   true,
	ActionPageUp:         true,
	ActionPageDown:       true,
	ActionHalfPageUp:     true,
	ActionHalfPageDown:   true,
	ActionGoToTop:        true,
	ActionGoToBottom:     true,
	ActionSubmit:         true,
	ActionFocusNext:      true,
	ActionFocusPrev:      true,
	ActionOpenSearch:     true,
	ActionCancel:         true,
	ActionYank:           true,
	ActionCycleMediaType: true,
	ActionCycleStatus:    true,
}

var knownContexts = map[Context]bool{
	ContextGlobal:     true,
	ContextNavigation: true,
	ContextSchema:     true,
	ContextSearch:     true,
}

// KnownAction returns true if the action can appear in a config file
func KnownAction(action Action) bool {
	return knownActions[action]
}

// KnownContext returns true if the context name is recognized
func KnownContext(context Context) bool {
	return knownContexts[context]
}
