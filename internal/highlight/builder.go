// Package highlight turns a resolved schema into an ordered sequence of
// styled lines: canonical YAML serialization, lexical highlighting, and a
// line-number gutter. The same schema always yields byte-identical lines,
// so panes can cache the result and rebuild only when the selection
// changes.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/oasview/internal/oaserr"
)

// Fragment is one styled run of text within a line.
type Fragment struct {
	Style lipgloss.Style
	Text  string
}

// Line is one visual row: the line-number gutter fragment followed by the
// styled source fragments.
type Line []Fragment

// Render concatenates the line's fragments with their styles applied.
func (l Line) Render() string {
	var sb strings.Builder
	for _, fragment := range l {
		sb.WriteString(fragment.Style.Render(fragment.Text))
	}
	return sb.String()
}

// Text returns the line's unstyled text, gutter included.
func (l Line) Text() string {
	var sb strings.Builder
	for _, fragment := range l {
		sb.WriteString(fragment.Text)
	}
	return sb.String()
}

// Builder highlights canonical YAML renderings of schemas. It caches the
// token-type to style mapping; it is built once and reused by every pane.
// Not safe for concurrent use; the update loop that drives it is
// single-threaded.
type Builder struct {
	lexer       chroma.Lexer
	style       *chroma.Style
	styleCache  map[chroma.TokenType]lipgloss.Style
	gutterStyle lipgloss.Style
}

// NewBuilder creates a Builder using the named chroma style. Unknown
// style names fall back to chroma's default style, so this never fails.
func NewBuilder(theme string) *Builder {
	return &Builder{
		lexer:       chroma.Coalesce(lexers.Get("yaml")),
		style:       styles.Get(theme),
		styleCache:  make(map[chroma.TokenType]lipgloss.Style),
		gutterStyle: lipgloss.NewStyle().Faint(true),
	}
}

// Build serializes value to canonical YAML and highlights it. Map keys
// are emitted in sorted order, so identical inputs produce identical
// output. A nil value yields no lines and no error.
func (b *Builder) Build(value interface{}) ([]Line, error) {
	if value == nil {
		return nil, nil
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, oaserr.Wrap(oaserr.KindSerialization, err, "marshal schema to YAML")
	}

	return b.Highlight(string(data))
}

// Highlight tokenizes already-serialized text and maps each token to its
// terminal style, producing one Line per visual row with the 1-based
// line number prepended as a de-emphasized gutter fragment.
func (b *Builder) Highlight(text string) ([]Line, error) {
	iterator, err := b.lexer.Tokenise(nil, text)
	if err != nil {
		return nil, oaserr.Wrap(oaserr.KindHighlight, err, "tokenize")
	}

	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	lines := make([]Line, 0, len(tokenLines))

	for i, tokens := range tokenLines {
		line := Line{b.gutter(i + 1)}
		for _, token := range tokens {
			value := strings.TrimRight(token.Value, "\n")
			if value == "" {
				continue
			}
			line = append(line, Fragment{Style: b.styleFor(token.Type), Text: value})
		}
		lines = append(lines, line)
	}

	// Serialized text ends with a newline; drop the empty row after it so
	// the line count matches the text's line count.
	if n := len(lines); n > 0 && len(lines[n-1]) == 1 {
		lines = lines[:n-1]
	}

	return lines, nil
}

// gutter builds the fixed-width line-number fragment.
func (b *Builder) gutter(lineNumber int) Fragment {
	return Fragment{
		Style: b.gutterStyle,
		Text:  fmt.Sprintf(" %-3d ", lineNumber),
	}
}

// styleFor translates a chroma token type into a lipgloss style using the
// builder's theme. Backgrounds are deliberately not carried over: lines
// render on the pane's own background.
func (b *Builder) styleFor(tokenType chroma.TokenType) lipgloss.Style {
	if style, ok := b.styleCache[tokenType]; ok {
		return style
	}

	entry := b.style.Get(tokenType)
	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	b.styleCache[tokenType] = style
	return style
}
