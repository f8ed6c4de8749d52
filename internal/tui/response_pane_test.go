package tui

import (
	"strings"
	"testing"

	"github.com/studiowebux/oasview/internal/highlight"
	"github.com/studiowebux/oasview/internal/keybinds"
	"github.com/studiowebux/oasview/internal/logging"
	"github.com/studiowebux/oasview/internal/oaserr"
	"github.com/studiowebux/oasview/internal/openapi"
)

func newResponsePane(t *testing.T, doc *openapi.Document) (*State, *ResponsePane) {
	t.Helper()
	state := NewState(doc)
	pane := NewResponsePane(state, keybinds.NewDefaultRegistry(), highlight.NewBuilder("monokai"), logging.Nop())
	if err := pane.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return state, pane
}

func TestResponsePane_EmptyWithoutSelection(t *testing.T) {
	_, pane := newResponsePane(t, testDocument())

	if len(pane.codes) != 0 {
		t.Errorf("Expected no status codes before any selection, got %v", pane.codes)
	}

	out, err := pane.Draw(60, 20)
	AssertNoError(t, err)
	if !strings.Contains(out, "select an operation") {
		t.Errorf("Expected the empty-state hint, got:\n%s", out)
	}
}

func TestResponsePane_BuildsFirstStatusSchema(t *testing.T) {
	state, pane := newResponsePane(t, testDocument())
	state.Select("/pets", "GET")

	_, err := pane.Update(keybinds.ActionUpdate)
	AssertNoError(t, err)

	if len(pane.codes) != 2 {
		t.Fatalf("Expected 2 status codes, got %v", pane.codes)
	}
	AssertModelField(t, "codes[0]", pane.codes[0], "200")
	AssertModelField(t, "codes[1]", pane.codes[1], "404")
	AssertModelField(t, "codeIndex", pane.codeIndex, 0)
	AssertModelField(t, "description", pane.description, "A list of pets")

	if len(pane.viewer.lines) == 0 {
		t.Fatal("Expected the 200 response schema to fill the cache")
	}
}

func TestResponsePane_CycleStatusWraps(t *testing.T) {
	state, pane := newResponsePane(t, testDocument())
	state.Select("/pets", "GET")
	pane.Update(keybinds.ActionUpdate)

	_, err := pane.Update(keybinds.ActionCycleStatus)
	AssertNoError(t, err)
	AssertModelField(t, "codeIndex", pane.codeIndex, 1)
	AssertModelField(t, "description", pane.description, "Not found")

	// 404 carries no content.
	if len(pane.viewer.lines) != 0 {
		t.Errorf("Expected an empty cache for a content-less response, got %d lines", len(pane.viewer.lines))
	}

	_, err = pane.Update(keybinds.ActionCycleStatus)
	AssertNoError(t, err)
	AssertModelField(t, "codeIndex wraps", pane.codeIndex, 0)
	if len(pane.viewer.lines) == 0 {
		t.Error("Expected the 200 schema back after wrapping")
	}
}

func TestResponsePane_CycleStatusResetsMediaTab(t *testing.T) {
	state, pane := newResponsePane(t, testDocument())
	state.Select("/pets", "POST")
	pane.Update(keybinds.ActionUpdate)

	AssertModelField(t, "codes[0]", pane.codes[0], "201")
	if len(pane.mediaTypes) != 1 {
		t.Fatalf("Expected 1 media type on 201, got %v", pane.mediaTypes)
	}

	_, err := pane.Update(keybinds.ActionCycleStatus)
	AssertNoError(t, err)
	AssertModelField(t, "codeIndex", pane.codeIndex, 1)
	AssertModelField(t, "mediaIndex after status cycle", pane.mediaIndex, 0)
}

func TestResponsePane_NoContentResponse(t *testing.T) {
	state, pane := newResponsePane(t, testDocument())
	state.Select("/pets/{petId}", "DELETE")

	_, err := pane.Update(keybinds.ActionUpdate)
	AssertNoError(t, err)

	if len(pane.codes) != 1 || pane.codes[0] != "204" {
		t.Fatalf("Expected only the 204 response, got %v", pane.codes)
	}
	if len(pane.viewer.lines) != 0 {
		t.Errorf("Expected no schema lines for 204, got %d", len(pane.viewer.lines))
	}

	out, err := pane.Draw(60, 20)
	AssertNoError(t, err)
	if !strings.Contains(out, "no content") {
		t.Errorf("Expected the no-content hint, got:\n%s", out)
	}

	// Cycling a single status is a no-op.
	_, err = pane.Update(keybinds.ActionCycleStatus)
	AssertNoError(t, err)
	AssertModelField(t, "codeIndex", pane.codeIndex, 0)
}

func TestResponsePane_OperationWithoutResponses(t *testing.T) {
	doc := &openapi.Document{
		OpenAPI: "3.0.3",
		Paths: map[string]openapi.PathItem{
			"/bare": {Get: &openapi.Operation{Summary: "Bare"}},
		},
	}
	state, pane := newResponsePane(t, doc)
	state.Select("/bare", "GET")

	_, err := pane.Update(keybinds.ActionUpdate)
	AssertNoError(t, err)

	out, err := pane.Draw(60, 20)
	AssertNoError(t, err)
	if !strings.Contains(out, "no responses documented") {
		t.Errorf("Expected the missing-responses hint, got:\n%s", out)
	}
}

func TestResponsePane_BrokenReferenceKeepsCache(t *testing.T) {
	state, pane := newResponsePane(t, brokenDocument())
	state.Select("/pets", "GET")
	_, err := pane.Update(keybinds.ActionUpdate)
	AssertNoError(t, err)

	before := renderedLines(pane.viewer.lines)
	if len(before) == 0 {
		t.Fatal("Expected the good operation to fill the cache")
	}

	state.Select("/broken", "GET")
	_, err = pane.Update(keybinds.ActionUpdate)
	AssertError(t, err)
	if !oaserr.IsKind(err, oaserr.KindReferenceResolution) {
		t.Errorf("Expected a reference resolution error, got %v", err)
	}

	after := renderedLines(pane.viewer.lines)
	if len(after) != len(before) {
		t.Fatalf("Expected the cache to survive the failed rebuild, got %d lines, want %d", len(after), len(before))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Line %d changed across a failed rebuild", i)
		}
	}
}

func TestResponsePane_ScrollSharesClampRules(t *testing.T) {
	state, pane := newResponsePane(t, testDocument())
	state.Select("/pets", "GET")
	pane.Update(keybinds.ActionUpdate)

	lineCount := len(pane.viewer.lines)
	for i := 0; i < lineCount+1; i++ {
		pane.Update(keybinds.ActionNavigateDown)
	}
	AssertModelField(t, "cursor", pane.viewer.cursor, lineCount-1)

	pane.Update(keybinds.ActionGoToTop)
	AssertModelField(t, "cursor at top", pane.viewer.cursor, 0)
}

func TestResponsePane_YankEmptyWithoutContent(t *testing.T) {
	state, pane := newResponsePane(t, testDocument())
	state.Select("/pets/{petId}", "DELETE")
	pane.Update(keybinds.ActionUpdate)

	_, _, ok := pane.yankText()
	if ok {
		t.Error("Expected no yank text for a content-less response")
	}
}
