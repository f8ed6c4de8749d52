package keybinds

import "strings"

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Unbind removes every key bound to the action in the given context.
// Used when a config override replaces an action's default keys.
func (r *Registry) Unbind(context Context, action Action) {
	contextBindings, ok := r.bindings[context]
	if !ok {
		return
	}
	for key, act := range contextBindings {
		if act == action {
			delete(contextBindings, key)
		}
	}
}

// Match attempts to match a key to an action in the given context.
// Returns the action and whether a match was found.
// Contexts are checked in priority order: specific context -> global.
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if action, ok := globalBindings[key]; ok {
			return action, true
		}
	}

	return ActionNone, false
}

// MatchExact matches a key in exactly one context, without the global
// fallback. Modal handlers use it so keys bound globally keep reaching
// the text input they would otherwise shadow.
func (r *Registry) MatchExact(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}
	return ActionNone, false
}

// GetBinding returns the key(s) bound to an action in a context
func (r *Registry) GetBinding(context Context, action Action) []string {
	var keys []string

	if contextBindings, ok := r.bindings[context]; ok {
		for key, act := range contextBindings {
			if act == action {
				keys = append(keys, key)
			}
		}
	}

	// If not found, check global
	if len(keys) == 0 {
		if globalBindings, ok := r.bindings[ContextGlobal]; ok {
			for key, act := range globalBindings {
				if act == action {
					keys = append(keys, key)
				}
			}
		}
	}

	return keys
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns all bindings visible in a context, including
// inherited global bindings
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding

	if contextBindings, ok := r.bindings[context]; ok {
		for key, action := range contextBindings {
			bindings = append(bindings, Binding{
				Key:     key,
				Action:  action,
				Context: context,
			})
		}
	}

	if context != ContextGlobal {
		if globalBindings, ok := r.bindings[ContextGlobal]; ok {
			for key, action := range globalBindings {
				bindings = append(bindings, Binding{
					Key:     key,
					Action:  action,
					Context: ContextGlobal,
				})
			}
		}
	}

	return bindings
}

// HasBinding checks if a key is bound in a context
func (r *Registry) HasBinding(context Context, key string) bool {
	if contextBindings, ok := r.bindings[context]; ok {
		if _, ok := contextBindings[key]; ok {
			return true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if _, ok := globalBindings[key]; ok {
			return true
		}
	}

	return false
}
