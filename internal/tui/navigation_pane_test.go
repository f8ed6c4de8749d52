package tui

import (
	"strings"
	"testing"

	"github.com/studiowebux/oasview/internal/keybinds"
	"github.com/studiowebux/oasview/internal/logging"
	"github.com/studiowebux/oasview/internal/openapi"
)

func newNavigationPane(t *testing.T, doc *openapi.Document) (*State, *NavigationPane) {
	t.Helper()
	state := NewState(doc)
	pane := NewNavigationPane(state, keybinds.NewDefaultRegistry(), logging.Nop())
	if err := pane.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return state, pane
}

func TestNavigationPane_ListsOperationsInDocumentOrder(t *testing.T) {
	_, pane := newNavigationPane(t, testDocument())

	if len(pane.visible) != 4 {
		t.Fatalf("Expected 4 operations, got %d", len(pane.visible))
	}

	want := []string{
		"GET /pets",
		"POST /pets",
		"GET /pets/{petId}",
		"DELETE /pets/{petId}",
	}
	for i, label := range want {
		ref := pane.ops[pane.visible[i]]
		if got := ref.Method + " " + ref.Path; got != label {
			t.Errorf("Operation %d = %q, want %q", i, got, label)
		}
	}
}

func TestNavigationPane_SubmitSelectsAndRequestsUpdate(t *testing.T) {
	state, pane := newNavigationPane(t, testDocument())

	followUp, err := pane.Update(keybinds.ActionSubmit)
	AssertNoError(t, err)
	AssertModelField(t, "followUp", followUp, keybinds.ActionUpdate)

	sel, ok := state.Selection()
	if !ok {
		t.Fatal("Expected a selection after submit")
	}
	AssertModelField(t, "selection.Method", sel.Method, "GET")
	AssertModelField(t, "selection.Path", sel.Path, "/pets")
}

func TestNavigationPane_CursorClampsAtEnds(t *testing.T) {
	_, pane := newNavigationPane(t, testDocument())

	_, err := pane.Update(keybinds.ActionNavigateUp)
	AssertNoError(t, err)
	AssertModelField(t, "cursor at top", pane.cursor, 0)

	for i := 0; i < 10; i++ {
		_, err = pane.Update(keybinds.ActionNavigateDown)
		AssertNoError(t, err)
	}
	AssertModelField(t, "cursor at bottom", pane.cursor, 3)

	_, err = pane.Update(keybinds.ActionGoToTop)
	AssertNoError(t, err)
	AssertModelField(t, "cursor after go to top", pane.cursor, 0)
}

func TestNavigationPane_FilterNarrowsAndResetsCursor(t *testing.T) {
	state, pane := newNavigationPane(t, testDocument())
	pane.Update(keybinds.ActionNavigateDown)
	pane.Update(keybinds.ActionNavigateDown)

	pane.SetFilter("create")

	AssertModelField(t, "cursor after filter", pane.cursor, 0)
	if len(pane.visible) != 1 {
		t.Fatalf("Expected 1 match for %q, got %d", "create", len(pane.visible))
	}

	followUp, err := pane.Update(keybinds.ActionSubmit)
	AssertNoError(t, err)
	AssertModelField(t, "followUp", followUp, keybinds.ActionUpdate)

	sel, _ := state.Selection()
	AssertModelField(t, "selection.Method", sel.Method, "POST")
	AssertModelField(t, "selection.Path", sel.Path, "/pets")
}

func TestNavigationPane_FilterWithoutMatches(t *testing.T) {
	state, pane := newNavigationPane(t, testDocument())

	pane.SetFilter("zzzz")

	if len(pane.visible) != 0 {
		t.Fatalf("Expected no matches, got %d", len(pane.visible))
	}

	// Submit on an empty list is a no-op, not an error.
	followUp, err := pane.Update(keybinds.ActionSubmit)
	AssertNoError(t, err)
	AssertModelField(t, "followUp", followUp, keybinds.ActionNone)
	if _, ok := state.Selection(); ok {
		t.Error("Expected no selection after submitting an empty list")
	}
}

func TestNavigationPane_ClearingFilterRestoresAll(t *testing.T) {
	_, pane := newNavigationPane(t, testDocument())

	pane.SetFilter("create")
	pane.SetFilter("")

	AssertModelField(t, "visible operations", len(pane.visible), 4)
}

func TestNavigationPane_UpdateReloadsOperations(t *testing.T) {
	state, pane := newNavigationPane(t, testDocument())

	state.SetDocument(brokenDocument())
	_, err := pane.Update(keybinds.ActionUpdate)
	AssertNoError(t, err)

	AssertModelField(t, "visible operations", len(pane.visible), 6)
}

func TestNavigationPane_UpdateKeepsFilter(t *testing.T) {
	state, pane := newNavigationPane(t, testDocument())
	pane.SetFilter("create")

	state.SetDocument(brokenDocument())
	_, err := pane.Update(keybinds.ActionUpdate)
	AssertNoError(t, err)

	AssertModelField(t, "filter", pane.filter, "create")
	if len(pane.visible) != 1 {
		t.Fatalf("Expected the filter to keep narrowing after reload, got %d matches", len(pane.visible))
	}
}

func TestNavigationPane_YankText(t *testing.T) {
	_, pane := newNavigationPane(t, testDocument())

	label, text, ok := pane.yankText()
	if !ok {
		t.Fatal("Expected yank to produce text")
	}
	AssertModelField(t, "yank label", label, "operation")
	AssertModelField(t, "yank text", text, "GET /pets")
}

func TestNavigationPane_DrawShowsListAndPosition(t *testing.T) {
	_, pane := newNavigationPane(t, testDocument())

	out, err := pane.Draw(60, 20)
	AssertNoError(t, err)

	if !strings.Contains(out, "Operations") {
		t.Error("Expected the title in the pane output")
	}
	if !strings.Contains(out, "> GET /pets") {
		t.Error("Expected the cursor row to be marked")
	}
	if !strings.Contains(out, "[1/4]") {
		t.Errorf("Expected the position footer, got:\n%s", out)
	}
}

func TestNavigationPane_DrawWindowFollowsCursor(t *testing.T) {
	_, pane := newNavigationPane(t, testDocument())

	// Two list rows: title and footer eat two of the four lines.
	pane.Update(keybinds.ActionGoToBottom)
	out, err := pane.Draw(60, 4)
	AssertNoError(t, err)

	if !strings.Contains(out, "> DELETE /pets/{petId}") {
		t.Errorf("Expected the last operation under the cursor, got:\n%s", out)
	}
	if !strings.Contains(out, "Get a pet by id") {
		t.Errorf("Expected the row above the cursor in the window, got:\n%s", out)
	}
	if strings.Contains(out, "List pets") {
		t.Errorf("Expected the first row to scroll out of the window, got:\n%s", out)
	}
}
