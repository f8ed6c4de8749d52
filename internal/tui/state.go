package tui

import (
	"sync"

	"github.com/studiowebux/oasview/internal/openapi"
)

// Selection identifies the operation the viewer is focused on. It is a
// value: changing the selection swaps the whole value under the state
// lock, never a field at a time.
type Selection struct {
	Path   string
	Method string
}

// State is the navigation state shared by every pane: the loaded
// document and the selected operation. Panes read it while rebuilding
// and drawing; the controller writes it on submit and reload.
type State struct {
	mu        sync.RWMutex
	doc       *openapi.Document
	selection Selection
	selected  bool
}

// NewState creates shared state over an already loaded document.
func NewState(doc *openapi.Document) *State {
	return &State{doc: doc}
}

// Document returns the currently loaded document.
func (s *State) Document() *openapi.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// SetDocument installs a freshly loaded document. The selection
// survives when the new document still has the selected operation and
// is cleared otherwise, so panes never point at an operation that no
// longer exists.
func (s *State) SetDocument(doc *openapi.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	if s.selected && (doc == nil || doc.OperationAt(s.selection.Path, s.selection.Method) == nil) {
		s.selection = Selection{}
		s.selected = false
	}
}

// Select records the operation at path+method as active. It returns
// false and keeps the previous selection when the document has no such
// operation.
func (s *State) Select(path, method string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil || s.doc.OperationAt(path, method) == nil {
		return false
	}
	s.selection = Selection{Path: path, Method: method}
	s.selected = true
	return true
}

// ClearSelection drops the active operation.
func (s *State) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{}
	s.selected = false
}

// Selection returns the active selection; ok is false when nothing has
// been selected yet.
func (s *State) Selection() (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection, s.selected
}

// ActiveOperation resolves the selection against the document. ok is
// false when nothing is selected or the document went away.
func (s *State) ActiveOperation() (Selection, *openapi.Operation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.selected || s.doc == nil {
		return Selection{}, nil, false
	}
	op := s.doc.OperationAt(s.selection.Path, s.selection.Method)
	if op == nil {
		return Selection{}, nil, false
	}
	return s.selection, op, true
}
