package tui

import (
	"strings"

	"github.com/studiowebux/oasview/internal/highlight"
	"github.com/studiowebux/oasview/internal/keybinds"
)

// schemaViewer is the scrolling core shared by the request and response
// panes: the highlighted line cache plus the cursor, the index of the
// first visible line. Rebuilds replace the cache wholesale and reset
// the cursor; scrolling never touches the lines.
type schemaViewer struct {
	lines  []highlight.Line
	cursor int
	height int // rows available at the last draw, drives paging
}

// replace installs a freshly built cache and resets the cursor.
func (v *schemaViewer) replace(lines []highlight.Line) {
	v.lines = lines
	v.cursor = 0
}

// maxCursor is the largest legal cursor value: the last line, or 0 when
// the cache is empty.
func (v *schemaViewer) maxCursor() int {
	if len(v.lines) == 0 {
		return 0
	}
	return len(v.lines) - 1
}

// scroll moves the cursor for one navigation action, clamped to the
// cache bounds. Actions that are not scrolling are ignored.
func (v *schemaViewer) scroll(action keybinds.Action) {
	page := max(v.height, 1)
	switch action {
	case keybinds.ActionNavigateDown:
		v.cursor = min(v.cursor+1, v.maxCursor())
	case keybinds.ActionNavigateUp:
		v.cursor = max(v.cursor-1, 0)
	case keybinds.ActionPageDown:
		v.cursor = min(v.cursor+page, v.maxCursor())
	case keybinds.ActionPageUp:
		v.cursor = max(v.cursor-page, 0)
	case keybinds.ActionHalfPageDown:
		v.cursor = min(v.cursor+max(page/2, 1), v.maxCursor())
	case keybinds.ActionHalfPageUp:
		v.cursor = max(v.cursor-max(page/2, 1), 0)
	case keybinds.ActionGoToTop:
		v.cursor = 0
	case keybinds.ActionGoToBottom:
		v.cursor = v.maxCursor()
	}
}

// visible returns the window of lines starting at the cursor.
func (v *schemaViewer) visible(height int) []highlight.Line {
	if height <= 0 || len(v.lines) == 0 {
		return nil
	}
	start := min(v.cursor, v.maxCursor())
	end := min(start+height, len(v.lines))
	return v.lines[start:end]
}

// text returns the cache's YAML without the line-number gutter, the
// form clipboard yanks want. The gutter is always a line's first
// fragment.
func (v *schemaViewer) text() string {
	if len(v.lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, line := range v.lines {
		for i, fragment := range line {
			if i == 0 {
				continue
			}
			sb.WriteString(fragment.Text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
