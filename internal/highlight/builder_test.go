package highlight

import (
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func petSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{"type": "string"},
		},
	}
}

func TestBuildMatchesCanonicalSerialization(t *testing.T) {
	builder := NewBuilder("monokai")

	lines, err := builder.Build(petSchema())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	canonical, err := yaml.Marshal(petSchema())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	wantLines := strings.Split(strings.TrimRight(string(canonical), "\n"), "\n")

	if len(lines) != len(wantLines) {
		t.Fatalf("Expected %d lines, got %d", len(wantLines), len(lines))
	}

	for i, line := range lines {
		gutter := fmt.Sprintf(" %-3d ", i+1)
		text := line.Text()
		if !strings.HasPrefix(text, gutter) {
			t.Errorf("Line %d: expected gutter %q, got %q", i, gutter, text)
		}
		if got := strings.TrimPrefix(text, gutter); got != wantLines[i] {
			t.Errorf("Line %d: expected %q, got %q", i, wantLines[i], got)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	builder := NewBuilder("monokai")

	first, err := builder.Build(petSchema())
	if err != nil {
		t.Fatalf("First build failed: %v", err)
	}
	second, err := builder.Build(petSchema())
	if err != nil {
		t.Fatalf("Second build failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Expected identical line counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Render() != second[i].Render() {
			t.Errorf("Line %d differs between builds:\n%q\n%q", i, first[i].Render(), second[i].Render())
		}
	}
}

func TestBuildNilYieldsNoLines(t *testing.T) {
	builder := NewBuilder("monokai")

	lines, err := builder.Build(nil)
	if err != nil {
		t.Fatalf("Expected nil value to build cleanly, got %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no lines for nil value, got %d", len(lines))
	}
}

func TestBuildSortsMapKeys(t *testing.T) {
	builder := NewBuilder("monokai")

	lines, err := builder.Build(map[string]interface{}{
		"zebra": "last",
		"alpha": "first",
		"mango": "middle",
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	order := []string{"alpha", "mango", "zebra"}
	for i, key := range order {
		if !strings.Contains(lines[i].Text(), key) {
			t.Errorf("Line %d: expected key %q, got %q", i, key, lines[i].Text())
		}
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	builder := NewBuilder("no-such-style")

	lines, err := builder.Build(petSchema())
	if err != nil {
		t.Fatalf("Expected fallback style to build, got %v", err)
	}
	if len(lines) == 0 {
		t.Error("Expected lines from the fallback style")
	}
}

func TestGutterCountsFromOne(t *testing.T) {
	builder := NewBuilder("monokai")

	lines, err := builder.Build(petSchema())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !strings.HasPrefix(lines[0].Text(), " 1   ") {
		t.Errorf("Expected first line gutter to read 1, got %q", lines[0].Text())
	}
}

func TestHighlightBlankLinesKeepGutter(t *testing.T) {
	builder := NewBuilder("monokai")

	lines, err := builder.Highlight("a: 1\n\nb: 2\n")
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if got := lines[1].Text(); got != " 2   " {
		t.Errorf("Expected the blank line to carry only its gutter, got %q", got)
	}
}
