package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/oasview/internal/keybinds"
	"github.com/studiowebux/oasview/internal/logging"
	"github.com/studiowebux/oasview/internal/openapi"
)

// NavigationPane lists the document's operations and owns selection
// changes: Submit selects the operation under the cursor and answers
// with Update for the controller to broadcast.
type NavigationPane struct {
	state    *State
	registry *keybinds.Registry
	log      *logging.Logger

	ops     []openapi.OperationRef // every operation, document order
	visible []int                  // indexes into ops after filtering
	cursor  int                    // position within visible
	filter  string
	focused bool
	height  int // list rows at the last draw, drives paging
}

// NewNavigationPane creates the operation list over the shared state.
func NewNavigationPane(state *State, registry *keybinds.Registry, log *logging.Logger) *NavigationPane {
	return &NavigationPane{state: state, registry: registry, log: log}
}

func (p *NavigationPane) Init() error {
	p.reload()
	return nil
}

func (p *NavigationPane) Focus() error {
	p.focused = true
	return nil
}

func (p *NavigationPane) Unfocus() error {
	p.focused = false
	return nil
}

// HandleKey translates a key press through the navigation context,
// falling back to global bindings.
func (p *NavigationPane) HandleKey(msg tea.KeyMsg) (keybinds.Action, error) {
	action, _ := p.registry.Match(keybinds.ContextNavigation, msg.String())
	return action, nil
}

func (p *NavigationPane) HandleMouse(msg tea.MouseMsg) (keybinds.Action, error) {
	return wheelAction(msg), nil
}

// Update applies one Action. Submit replaces the shared selection and
// asks for an Update broadcast; Update itself re-reads the operation
// list from the document.
func (p *NavigationPane) Update(action keybinds.Action) (keybinds.Action, error) {
	page := max(p.height, 1)
	switch action {
	case keybinds.ActionNavigateDown:
		p.cursor = min(p.cursor+1, p.maxCursor())
	case keybinds.ActionNavigateUp:
		p.cursor = max(p.cursor-1, 0)
	case keybinds.ActionPageDown:
		p.cursor = min(p.cursor+page, p.maxCursor())
	case keybinds.ActionPageUp:
		p.cursor = max(p.cursor-page, 0)
	case keybinds.ActionHalfPageDown:
		p.cursor = min(p.cursor+max(page/2, 1), p.maxCursor())
	case keybinds.ActionHalfPageUp:
		p.cursor = max(p.cursor-max(page/2, 1), 0)
	case keybinds.ActionGoToTop:
		p.cursor = 0
	case keybinds.ActionGoToBottom:
		p.cursor = p.maxCursor()
	case keybinds.ActionSubmit:
		ref, ok := p.current()
		if !ok {
			return keybinds.ActionNone, nil
		}
		if !p.state.Select(ref.Path, ref.Method) {
			return keybinds.ActionNone, nil
		}
		p.log.Debug("operation selected", "method", ref.Method, "path", ref.Path)
		return keybinds.ActionUpdate, nil
	case keybinds.ActionUpdate:
		p.reload()
	}
	return keybinds.ActionNone, nil
}

// Draw renders the list: title, the window of operations around the
// cursor, and a position footer.
func (p *NavigationPane) Draw(width, height int) (string, error) {
	rows := max(height-2, 1) // title and footer
	p.height = rows

	var sb strings.Builder
	title := "Operations"
	if p.filter != "" {
		title = fmt.Sprintf("Operations  /%s", p.filter)
	}
	sb.WriteString(styleTitle.MaxWidth(width).Render(title))
	sb.WriteString("\n")

	if len(p.visible) == 0 {
		if p.filter != "" {
			sb.WriteString(styleSubtle.Render("no matches"))
		} else {
			sb.WriteString(styleSubtle.Render("no operations"))
		}
		return sb.String(), nil
	}

	start := 0
	if p.cursor >= rows {
		start = p.cursor - rows + 1
	}
	end := min(start+rows, len(p.visible))

	rowStyle := lipgloss.NewStyle().MaxWidth(width)
	for i := start; i < end; i++ {
		ref := p.ops[p.visible[i]]
		if i == p.cursor {
			sb.WriteString(rowStyle.Render(styleSelected.Render("> " + ref.Label())))
		} else {
			line := fmt.Sprintf("  %s %s", methodStyle(ref.Method).Render(fmt.Sprintf("%-7s", ref.Method)), ref.Path)
			if summary := ref.Operation.Summary; summary != "" {
				line += styleSubtle.Render("  " + summary)
			}
			sb.WriteString(rowStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(styleSubtle.Render(fmt.Sprintf("[%d/%d]", p.cursor+1, len(p.visible))))
	return sb.String(), nil
}

// SetFilter narrows the list to operations fuzzy-matching the query and
// moves the cursor to the best match.
func (p *NavigationPane) SetFilter(query string) {
	p.filter = query
	p.applyFilter()
	p.cursor = 0
}

// reload re-reads the operation list from the shared document, keeping
// the filter and clamping the cursor.
func (p *NavigationPane) reload() {
	p.ops = nil
	if doc := p.state.Document(); doc != nil {
		p.ops = doc.Operations()
	}
	p.applyFilter()
}

// applyFilter recomputes the visible indexes. An empty filter shows
// everything in document order; otherwise matches come back in fuzzy
// score order.
func (p *NavigationPane) applyFilter() {
	p.visible = p.visible[:0]
	if p.filter == "" {
		for i := range p.ops {
			p.visible = append(p.visible, i)
		}
	} else {
		targets := make([]string, len(p.ops))
		for i, ref := range p.ops {
			targets[i] = ref.Label()
		}
		for _, match := range fuzzy.Find(p.filter, targets) {
			p.visible = append(p.visible, match.Index)
		}
	}
	p.cursor = min(p.cursor, p.maxCursor())
}

// current returns the operation under the cursor.
func (p *NavigationPane) current() (openapi.OperationRef, bool) {
	if len(p.visible) == 0 {
		return openapi.OperationRef{}, false
	}
	return p.ops[p.visible[min(p.cursor, p.maxCursor())]], true
}

func (p *NavigationPane) maxCursor() int {
	if len(p.visible) == 0 {
		return 0
	}
	return len(p.visible) - 1
}

// yankText copies the operation under the cursor as "METHOD path".
func (p *NavigationPane) yankText() (string, string, bool) {
	ref, ok := p.current()
	if !ok {
		return "", "", false
	}
	return "operation", ref.Method + " " + ref.Path, true
}
