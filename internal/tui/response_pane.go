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

// ResponsePane renders the selected operation's response schemas, one
// status code and media type at a time.
type ResponsePane struct {
	state    *State
	registry *keybinds.Registry
	builder  *highlight.Builder
	log      *logging.Logger

	viewer      schemaViewer
	codes       []string
	codeIndex   int
	mediaTypes  []string
	mediaIndex  int
	description string
	focused     bool
}

// NewResponsePane creates the response schema pane.
func NewResponsePane(state *State, registry *keybinds.Registry, builder *highlight.Builder, log *logging.Logger) *ResponsePane {
	return &ResponsePane{state: state, registry: registry, builder: builder, log: log}
}

func (p *ResponsePane) Init() error {
	return p.rebuild()
}

func (p *ResponsePane) Focus() error {
	p.focused = true
	return nil
}

func (p *ResponsePane) Unfocus() error {
	p.focused = false
	return nil
}

// HandleKey translates a key press through the schema context, falling
// back to global bindings.
func (p *ResponsePane) HandleKey(msg tea.KeyMsg) (keybinds.Action, error) {
	action, _ := p.registry.Match(keybinds.ContextSchema, msg.String())
	return action, nil
}

func (p *ResponsePane) HandleMouse(msg tea.MouseMsg) (keybinds.Action, error) {
	return wheelAction(msg), nil
}

// Update applies one Action. Update rebuilds from the shared state,
// cycling switches the status or media tab, everything else scrolls.
func (p *ResponsePane) Update(action keybinds.Action) (keybinds.Action, error) {
	switch action {
	case keybinds.ActionUpdate:
		p.codeIndex = 0
		p.mediaIndex = 0
		return keybinds.ActionNone, p.rebuild()
	case keybinds.ActionCycleStatus:
		if len(p.codes) < 2 {
			return keybinds.ActionNone, nil
		}
		p.codeIndex = (p.codeIndex + 1) % len(p.codes)
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

// Draw renders the status code tabs, the media type tabs, and the
// window of highlighted lines at the cursor.
func (p *ResponsePane) Draw(width, height int) (string, error) {
	var sb strings.Builder
	sb.WriteString(styleTitle.MaxWidth(width).Render("Responses"))
	sb.WriteString("\n")

	if len(p.codes) == 0 {
		if _, _, ok := p.state.ActiveOperation(); !ok {
			sb.WriteString(styleSubtle.Render("select an operation"))
		} else {
			sb.WriteString(styleSubtle.Render("no responses documented"))
		}
		return sb.String(), nil
	}

	sb.WriteString(p.renderCodeTabs(width))
	sb.WriteString("\n")

	chrome := 3 // title, status tabs, footer
	if len(p.mediaTypes) > 0 {
		sb.WriteString(renderMediaTabs(p.mediaTypes, p.mediaIndex, width))
		sb.WriteString("\n")
		chrome++
	}

	rows := max(height-chrome, 1)
	p.viewer.height = rows

	if len(p.viewer.lines) == 0 {
		sb.WriteString(styleSubtle.Render("no content"))
		return sb.String(), nil
	}

	lineStyle := lipgloss.NewStyle().MaxWidth(width)
	for _, line := range p.viewer.visible(rows) {
		sb.WriteString(lineStyle.Render(line.Render()))
		sb.WriteString("\n")
	}

	sb.WriteString(styleSubtle.Render(fmt.Sprintf("[%d/%d]", p.viewer.cursor+1, len(p.viewer.lines))))
	return sb.String(), nil
}

// renderCodeTabs renders the status code tabs with the active one
// emphasized and its description alongside.
func (p *ResponsePane) renderCodeTabs(width int) string {
	tabs := make([]string, len(p.codes))
	for i, code := range p.codes {
		if i == p.codeIndex {
			tabs[i] = styleSelected.Render(code)
		} else {
			tabs[i] = statusStyle(code).Render(code)
		}
	}
	line := strings.Join(tabs, "  ")
	if p.description != "" {
		line += styleSubtle.Render("  " + p.description)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// rebuild resolves and highlights the schema of the active status code
// and media type. A response without content is legal and renders
// empty. The cache is replaced only when the whole pipeline succeeds.
func (p *ResponsePane) rebuild() error {
	_, op, ok := p.state.ActiveOperation()
	if !ok || len(op.Responses) == 0 {
		p.codes = nil
		p.codeIndex = 0
		p.mediaTypes = nil
		p.mediaIndex = 0
		p.description = ""
		p.viewer.replace(nil)
		return nil
	}

	codes := op.ResponseCodes()
	if p.codeIndex >= len(codes) {
		p.codeIndex = 0
	}
	response := op.Responses[codes[p.codeIndex]]

	mediaTypes := response.MediaTypes()
	var schema map[string]interface{}
	if len(mediaTypes) > 0 {
		if p.mediaIndex >= len(mediaTypes) {
			p.mediaIndex = 0
		}
		schema = response.Content[mediaTypes[p.mediaIndex]].Schema
	}

	resolved, err := p.state.Document().ResolveSchema(schema)
	if err != nil {
		return err
	}
	lines, err := p.builder.Build(asBuildValue(resolved))
	if err != nil {
		return err
	}

	p.codes = codes
	p.mediaTypes = mediaTypes
	p.description = response.Description
	p.viewer.replace(lines)
	return nil
}

// asBuildValue keeps a nil schema map from serializing as YAML "null".
func asBuildValue(schema map[string]interface{}) interface{} {
	if schema == nil {
		return nil
	}
	return schema
}

// yankText copies the current cache as plain YAML.
func (p *ResponsePane) yankText() (string, string, bool) {
	text := p.viewer.text()
	return "response schema", text, text != ""
}

// statusStyle colors a status code tab by its class.
func statusStyle(code string) lipgloss.Style {
	switch {
	case strings.HasPrefix(code, "2"):
		return styleSuccess
	case strings.HasPrefix(code, "4"), strings.HasPrefix(code, "5"):
		return styleError
	case strings.HasPrefix(code, "3"):
		return styleWarning
	}
	return styleSubtle
}
