package keybinds

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if !v.reservedKeys["ctrl+c"] {
		t.Error("Expected ctrl+c to be a reserved key")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "conflict error",
			err: ValidationError{
				Type:    "conflict",
				Context: ContextNavigation,
				Key:     "p",
				Message: "bound to both 'yank' and 'submit'",
			},
			expected: "[conflict] p in context 'navigation': bound to both 'yank' and 'submit'",
		},
		{
			name: "invalid error",
			err: ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Key:     "",
				Message: "empty key",
			},
			expected: "[invalid]  in context 'global': empty key",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:    "warning",
				Context: ContextSchema,
				Key:     "r",
				Message: "shadows global binding",
			},
			expected: "[warning] r in context 'schema': shadows global binding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	result := &ValidationResult{
		Errors: []ValidationError{
			{Type: "invalid", Context: ContextGlobal, Key: "x", Message: "unknown action 'fly'"},
		},
		Warnings: []ValidationError{
			{Type: "warning", Context: ContextSchema, Key: "r", Message: "shadows global binding (reload -> yank)"},
		},
	}

	got := result.String()
	if !strings.Contains(got, "Errors (1):") {
		t.Errorf("Expected error count in summary, got %q", got)
	}
	if !strings.Contains(got, "Warnings (1):") {
		t.Errorf("Expected warning count in summary, got %q", got)
	}

	clean := &ValidationResult{}
	if got := clean.String(); got != "No issues found" {
		t.Errorf("String() = %q, want %q", got, "No issues found")
	}
}

func TestValidateRegistry_UnknownAction(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextGlobal, "z", Action("teleport"))

	result := NewValidator().ValidateRegistry(r)
	if !result.HasErrors() {
		t.Fatal("Expected an error for unknown action")
	}

	found := false
	for _, err := range result.Errors {
		if err.Type == "invalid" && err.Key == "z" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected invalid error for key 'z', got:\n%s", result.String())
	}
}

func TestValidateRegistry_ReservedKey(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextGlobal, "ctrl+c", ActionYank)

	result := NewValidator().ValidateRegistry(r)
	if !result.HasErrors() {
		t.Fatal("Expected an error when ctrl+c loses quit")
	}
}

func TestValidateRegistry_ShadowingWarns(t *testing.T) {
	r := NewDefaultRegistry()
	// Global binds r to reload; shadowing it in a pane context is legal
	// but worth a warning.
	r.Register(ContextSchema, "r", ActionYank)

	result := NewValidator().ValidateRegistry(r)
	if result.HasErrors() {
		t.Fatalf("Expected no errors, got:\n%s", result.String())
	}
	if !result.HasWarnings() {
		t.Fatal("Expected a shadowing warning")
	}

	warn := result.Warnings[0]
	if warn.Context != ContextSchema || warn.Key != "r" {
		t.Errorf("Expected warning for 'r' in schema context, got %+v", warn)
	}
}
