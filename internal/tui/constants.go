package tui

// Pane indexes. The order is the tab order.
const (
	paneNavigation = 0
	paneRequest    = 1
	paneResponse   = 2
)

// UI layout constants.
const (
	// minNavWidth keeps the operation list readable on narrow terminals
	// regardless of the configured percentage.
	minNavWidth = 30

	// maxStatusMessageLen truncates status bar messages so the bar never
	// wraps to a second line.
	maxStatusMessageLen = 100

	// searchInputCharLimit bounds the filter query length.
	searchInputCharLimit = 120
)
