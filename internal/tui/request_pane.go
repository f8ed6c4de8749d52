package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/oasview/internal/highlight"
	"github.com/studiowebux/oasview/internal/keybinds"
	"github.com/studiowebux/oasview/internal/logging"
)

// RequestPane renders the selected operation's request body schema,
// resolved and highlighted, one media type at a time.
type RequestPane struct {
	state    *State
	registry *keybinds.Registry
	builder  *highlight.Builder
	log      *logging.Logger

	viewer     schemaViewer
	mediaTypes []string
	mediaIndex int
	required   bool
	focused    bool
}

// NewRequestPane creates the request schema pane.
func NewRequestPane(state *State, registry *keybinds.Registry, builder *highlight.Builder, log *logging.Logger) *RequestPane {
	return &RequestPane{state: state, registry: registry, builder: builder, log: log}
}

func (p *RequestPane) Init() error {
	return p.rebuild()
}

func (p *RequestPane) Focus() error {
	p.focused = true
	return nil
}

func (p *RequestPane) Unfocus() error {
	p.focused = false
	return nil
}

// HandleKey translates a key press through the schema context, falling
// back to global bindings.
func (p *RequestPane) HandleKey(msg tea.KeyMsg) (keybinds.Action, error) {
	action, _ := p.registry.Match(keybinds.ContextSchema, msg.String())
	return action, nil
}

func (p *RequestPane) HandleMouse(msg tea.MouseMsg) (keybinds.Action, error) {
	return wheelAction(msg), nil
}

// Update applies one Action. Update rebuilds the cache from the shared
// state; cycling media types rebuilds for the next tab; everything else
// scrolls.
func (p *RequestPane) Update(action keybinds.Action) (keybinds.Action, error) {
	switch action {
	case keybinds.ActionUpdate:
		p.mediaIndex = 0
		return keybinds.ActionNone, p.rebuild()
	case keybinds.ActionCycleMediaType:
		if len(p.mediaTypes) < 2 {
			return keybinds.ActionNone, nil
		}
		p.mediaIndex = (p.mediaIndex + 1) % len(p.mediaTypes)
		return keybinds.ActionNone, p.rebuild()
	default:
		p.viewer.scroll(action)
	}
	return keybinds.ActionNone, nil
}

// Draw renders the media type tabs and the window of highlighted lines
// at the cursor.
func (p *RequestPane) Draw(width, height int) (string, error) {
	var sb strings.Builder
	title := "Request Body"
	if p.required {
		title += "  (required)"
	}
	sb.WriteString(styleTitle.MaxWidth(width).Render(title))
	sb.WriteString("\n")

	if len(p.mediaTypes) == 0 {
		sel, _, ok := p.state.ActiveOperation()
		switch {
		case !ok:
			sb.WriteString(styleSubtle.Render("select an operation"))
		default:
			sb.WriteString(styleSubtle.Render(fmt.Sprintf("%s %s has no request body", sel.Method, sel.Path)))
		}
		return sb.String(), nil
	}

	sb.WriteString(renderMediaTabs(p.mediaTypes, p.mediaIndex, width))
	sb.WriteString("\n")

	if len(p.viewer.lines) == 0 {
		sb.WriteString(styleSubtle.Render("no schema"))
		return sb.String(), nil
	}

	rows := max(height-3, 1) // title, tabs, footer
	p.viewer.height = rows

	lineStyle := lipgloss.NewStyle().MaxWidth(width)
	for _, line := range p.viewer.visible(rows) {
		sb.WriteString(lineStyle.Render(line.Render()))
		sb.WriteString("\n")
	}

	sb.WriteString(styleSubtle.Render(fmt.Sprintf("[%d/%d]", p.viewer.cursor+1, len(p.viewer.lines))))
	return sb.String(), nil
}

// rebuild resolves and highlights the active media type's schema. The
// cache is replaced only when the whole pipeline succeeds; any failure
// leaves the previous lines in place and propagates.
func (p *RequestPane) rebuild() error {
	_, op, ok := p.state.ActiveOperation()
	if !ok || op.RequestBody == nil || len(op.RequestBody.Content) == 0 {
		p.mediaTypes = nil
		p.mediaIndex = 0
		p.required = false
		p.viewer.replace(nil)
		return nil
	}

	mediaTypes := op.RequestBody.MediaTypes()
	if p.mediaIndex >= len(mediaTypes) {
		p.mediaIndex = 0
	}
	media := op.RequestBody.Content[mediaTypes[p.mediaIndex]]

	resolved, err := p.state.Document().ResolveSchema(media.Schema)
	if err != nil {
		return err
	}
	lines, err := p.builder.Build(resolved)
	if err != nil {
		return err
	}

	p.mediaTypes = mediaTypes
	p.required = op.RequestBody.Required
	p.viewer.replace(lines)
	return nil
}

// yankText copies the current cache as plain YAML.
func (p *RequestPane) yankText() (string, string, bool) {
	text := p.viewer.text()
	return "request schema", text, text != ""
}

// renderMediaTabs renders one tab per media type with the active one
// emphasized. Shared with the response pane.
func renderMediaTabs(mediaTypes []string, active, width int) string {
	tabs := make([]string, len(mediaTypes))
	for i, mt := range mediaTypes {
		if i == active {
			tabs[i] = styleSelected.Render(mt)
		} else {
			tabs[i] = styleSubtle.Render(mt)
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(tabs, "  "))
}
