package keybinds

import (
	"fmt"
	"strings"
)

// Overrides is the keybind section of the config file: context -> action ->
// comma-separated key list. Keys listed for an action replace that action's
// default keys in that context.
//
//	keybinds:
//	  global:
//	    quit: "q,ctrl+c"
//	  navigation:
//	    go_to_top: "g,home"
type Overrides map[string]map[string]string

// ApplyOverrides validates the overrides and applies them on top of the
// registry's defaults. The returned ValidationResult carries warnings even
// on success; on error the registry is left unchanged.
//
// ctrl+c stays bound to quit regardless of overrides.
func ApplyOverrides(r *Registry, overrides Overrides) (*ValidationResult, error) {
	bindings, result := parseOverrides(overrides)
	if result.HasErrors() {
		return result, fmt.Errorf("invalid keybind overrides:\n%s", result.String())
	}

	// Replace each overridden action's default keys, then register the new
	// ones. Unbinding first keeps defaults from lingering next to overrides.
	unbound := make(map[Context]map[Action]bool)
	for _, b := range bindings {
		if unbound[b.Context] == nil {
			unbound[b.Context] = make(map[Action]bool)
		}
		if !unbound[b.Context][b.Action] {
			r.Unbind(b.Context, b.Action)
			unbound[b.Context][b.Action] = true
		}
	}
	for _, b := range bindings {
		r.Register(b.Context, b.Key, b.Action)
	}

	r.Register(ContextGlobal, "ctrl+c", ActionQuit)

	return result, nil
}

// parseOverrides turns the config section into bindings, collecting every
// problem instead of stopping at the first
func parseOverrides(overrides Overrides) ([]Binding, *ValidationResult) {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	var bindings []Binding
	for contextName, actions := range overrides {
		context := Context(contextName)
		if !KnownContext(context) {
			result.Errors = append(result.Errors, ValidationError{
				Type:    "invalid",
				Context: context,
				Message: "unknown context",
			})
			continue
		}

		// claimed tracks which action owns each key within this context
		claimed := make(map[string]Action)
		for actionName, keyList := range actions {
			action := Action(actionName)
			if !KnownAction(action) {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Message: fmt.Sprintf("unknown action '%s'", actionName),
				})
				continue
			}

			for _, key := range SplitKeys(keyList) {
				if err := ValidateKey(key); err != nil {
					result.Errors = append(result.Errors, ValidationError{
						Type:    "invalid",
						Context: context,
						Key:     key,
						Message: err.Error(),
					})
					continue
				}

				if prev, dup := claimed[key]; dup && prev != action {
					result.Errors = append(result.Errors, ValidationError{
						Type:    "conflict",
						Context: context,
						Key:     key,
						Message: fmt.Sprintf("bound to both '%s' and '%s'", prev, action),
					})
					continue
				}
				claimed[key] = action

				bindings = append(bindings, Binding{
					Key:     key,
					Action:  action,
					Context: context,
				})
			}
		}
	}

	return bindings, result
}

// SplitKeys splits a comma-separated key list, trimming whitespace and
// dropping empty entries
func SplitKeys(list string) []string {
	var keys []string
	for _, key := range strings.Split(list, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}
