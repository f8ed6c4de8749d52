package keybinds

import "testing"

func TestRegistryMatch(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "q", ActionQuit)
	r.Register(ContextNavigation, "enter", ActionSubmit)

	tests := []struct {
		name    string
		context Context
		key     string
		action  Action
		matched bool
	}{
		{
			name:    "specific context match",
			context: ContextNavigation,
			key:     "enter",
			action:  ActionSubmit,
			matched: true,
		},
		{
			name:    "global fallback",
			context: ContextNavigation,
			key:     "q",
			action:  ActionQuit,
			matched: true,
		},
		{
			name:    "no match",
			context: ContextNavigation,
			key:     "z",
			action:  ActionNone,
			matched: false,
		},
		{
			name:    "context binding invisible elsewhere",
			context: ContextSchema,
			key:     "enter",
			action:  ActionNone,
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, matched := r.Match(tt.context, tt.key)
			if matched != tt.matched {
				t.Errorf("Match() matched = %v, want %v", matched, tt.matched)
			}
			if action != tt.action {
				t.Errorf("Match() action = %q, want %q", action, tt.action)
			}
		})
	}
}

func TestRegistryContextOverridesGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "s", ActionQuit)
	r.Register(ContextSchema, "s", ActionCycleStatus)

	action, ok := r.Match(ContextSchema, "s")
	if !ok || action != ActionCycleStatus {
		t.Errorf("Expected schema binding to win, got %q", action)
	}

	action, ok = r.Match(ContextNavigation, "s")
	if !ok || action != ActionQuit {
		t.Errorf("Expected global binding in other contexts, got %q", action)
	}
}

func TestRegistryUnbind(t *testing.T) {
	r := NewRegistry()
	r.RegisterMultiple(ContextNavigation, []string{"g", "home"}, ActionGoToTop)
	r.Register(ContextNavigation, "G", ActionGoToBottom)

	r.Unbind(ContextNavigation, ActionGoToTop)

	if r.HasBinding(ContextNavigation, "g") {
		t.Error("Expected 'g' to be unbound")
	}
	if r.HasBinding(ContextNavigation, "home") {
		t.Error("Expected 'home' to be unbound")
	}
	if !r.HasBinding(ContextNavigation, "G") {
		t.Error("Expected 'G' to remain bound")
	}
}

func TestDefaultRegistryBindings(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		context Context
		key     string
		action  Action
	}{
		{ContextGlobal, "q", ActionQuit},
		{ContextGlobal, "ctrl+c", ActionQuit},
		{ContextGlobal, "tab", ActionFocusNext},
		{ContextGlobal, "]", ActionFocusNext},
		{ContextGlobal, "shift+tab", ActionFocusPrev},
		{ContextGlobal, "[", ActionFocusPrev},
		{ContextGlobal, "/", ActionOpenSearch},
		{ContextGlobal, "r", ActionReload},
		{ContextNavigation, "k", ActionNavigateUp},
		{ContextNavigation, "up", ActionNavigateUp},
		{ContextNavigation, "j", ActionNavigateDown},
		{ContextNavigation, "down", ActionNavigateDown},
		{ContextNavigation, "enter", ActionSubmit},
		{ContextNavigation, "y", ActionYank},
		{ContextNavigation, "g", ActionGoToTop},
		{ContextNavigation, "G", ActionGoToBottom},
		{ContextSchema, "j", ActionNavigateDown},
		{ContextSchema, "k", ActionNavigateUp},
		{ContextSchema, "t", ActionCycleMediaType},
		{ContextSchema, "s", ActionCycleStatus},
		{ContextSchema, "y", ActionYank},
		{ContextSchema, "pgdown", ActionPageDown},
		{ContextSchema, "pgup", ActionPageUp},
		{ContextSearch, "esc", ActionCancel},
		{ContextSearch, "enter", ActionSubmit},
		{ContextSearch, "up", ActionNavigateUp},
		{ContextSearch, "down", ActionNavigateDown},
	}

	for _, tt := range tests {
		action, ok := r.Match(tt.context, tt.key)
		if !ok {
			t.Errorf("Expected %q to be bound in context %q", tt.key, tt.context)
			continue
		}
		if action != tt.action {
			t.Errorf("Match(%q, %q) = %q, want %q", tt.context, tt.key, action, tt.action)
		}
	}
}

func TestDefaultRegistryValidates(t *testing.T) {
	r := NewDefaultRegistry()

	result := NewValidator().ValidateRegistry(r)
	if result.HasErrors() {
		t.Errorf("Expected default registry to validate, got:\n%s", result.String())
	}
	if result.HasWarnings() {
		t.Errorf("Expected no warnings for defaults, got:\n%s", result.String())
	}
}

func TestGetBindingString(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "q", ActionQuit)

	if got := r.GetBindingString(ContextNavigation, ActionQuit); got != "q" {
		t.Errorf("GetBindingString() = %q, want %q", got, "q")
	}

	if got := r.GetBindingString(ContextNavigation, ActionYank); got != "unbound" {
		t.Errorf("GetBindingString() = %q, want %q", got, "unbound")
	}
}
