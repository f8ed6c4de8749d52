package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"} // Dark blue / Blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	// Pane borders are the focus indicator: thick and bright on the
	// focused pane, plain and dim everywhere else.
	styleFocusedPane = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorGreen)

	styleUnfocusedPane = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorGray)
)

// methodStyles colors HTTP methods the way the navigation list shows
// them.
var methodStyles = map[string]lipgloss.Style{
	"GET":     lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
	"POST":    lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
	"PUT":     lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
	"PATCH":   lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	"DELETE":  lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	"HEAD":    lipgloss.NewStyle().Foreground(colorGray).Bold(true),
	"OPTIONS": lipgloss.NewStyle().Foreground(colorGray).Bold(true),
}

func methodStyle(method string) lipgloss.Style {
	if style, ok := methodStyles[method]; ok {
		return style
	}
	return styleSubtle
}

// renderMain renders the main view: navigation on the left, request and
// response stacked on the right, status bar at the bottom.
func (m Model) renderMain() string {
	contentHeight := m.contentHeight()
	navWidth := m.navWidth() - 2 // inside the border
	rightWidth := max(m.width-navWidth-4, 10)
	navHeight := max(contentHeight-2, 1)
	requestHeight := max((contentHeight-4)/2, 1)
	responseHeight := max(contentHeight-4-requestHeight, 1)

	navigation := m.renderPane(paneNavigation, navWidth, navHeight)
	request := m.renderPane(paneRequest, rightWidth, requestHeight)
	response := m.renderPane(paneResponse, rightWidth, responseHeight)

	mainView := lipgloss.JoinHorizontal(
		lipgloss.Top,
		navigation,
		lipgloss.JoinVertical(lipgloss.Left, request, response),
	)

	sections := []string{mainView}
	if m.searching {
		sections = append(sections, m.renderSearchBar())
	}
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPane draws one pane inside its focus border. A draw failure
// shows in the pane's box; drawing reads nothing that an update could
// not already have failed on.
func (m Model) renderPane(index, width, height int) string {
	content, err := m.panes[index].Draw(width, height)
	if err != nil {
		m.log.Error("pane draw failed", "pane", m.names[index], "error", err)
		content = styleError.Render(fmt.Sprintf("render error: %v", err))
	}

	box := styleUnfocusedPane
	if index == m.focused {
		box = styleFocusedPane
	}
	return box.Width(width).Height(height).Render(content)
}

// renderStatusBar renders the bottom line: document identity on the
// left, transient feedback or the active selection on the right.
func (m Model) renderStatusBar() string {
	left := "no document"
	if doc := m.state.Document(); doc != nil {
		left = fmt.Sprintf("%s %s | %d operations", doc.Info.Title, doc.Info.Version, m.opCount)
	}

	right := ""
	if m.errorMessage != "" {
		right = styleError.Render(m.errorMessage)
	} else if m.statusMessage != "" {
		right = styleSuccess.Render(m.statusMessage)
	} else if sel, ok := m.state.Selection(); ok {
		right = methodStyle(sel.Method).Render(sel.Method) + " " + sel.Path
	} else {
		right = styleSubtle.Render("enter to select | tab to switch panes | / to search | q to quit")
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// renderSearchBar renders the filter prompt while search mode is
// active.
func (m Model) renderSearchBar() string {
	return m.searchInput.View()
}

// navWidth returns the navigation column's total width, borders
// included.
func (m Model) navWidth() int {
	width := max(minNavWidth, m.width*m.navPercent/100)
	if m.width < 100 {
		width = m.width / 2
	}
	return width + 2
}

// contentHeight returns the rows available to the pane boxes.
func (m Model) contentHeight() int {
	height := m.height - 1 // status bar
	if m.searching {
		height--
	}
	return max(height, 0)
}
