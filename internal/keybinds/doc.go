/*
Package keybinds provides customizable keyboard binding management.

# Overview

The keybinds package implements a context-aware keyboard binding system
that maps keys to actions. Panes and the controller dispatch on actions,
never on raw keys, so every binding can be customized through the config
file without touching pane code.

# Key Concepts

Context Hierarchy:
  - Global: Bindings available everywhere
  - Navigation: Operation list pane
  - Schema: Request/response schema panes
  - Search: Search input overlay

Keys shadow from specific -> global. If a key is bound in a specific
context, it overrides the global binding.

Action System:
  - Actions are constants (ActionQuit, ActionSubmit, etc.)
  - Keys map to actions within contexts
  - Same action can have different keys in different contexts
  - ActionUpdate is controller-emitted only and cannot be bound to a key

# Components

Registry (registry.go):
  - Central storage for keybindings
  - Context-aware key matching with global fallback

Defaults (defaults.go):
  - Default keybinding configuration
  - Covers all contexts and actions
  - Used when no custom config exists

Overrides (config.go):
  - Parses the keybinds section of the config file
  - Keys listed for an action replace that action's defaults

Validator (validator.go):
  - Rejects unknown actions and contexts
  - Rejects keys claimed by two actions in the same context
  - Warns about shadowing
  - Protects reserved keys

# Configuration File Format

Keybind overrides live in the config file under the keybinds key,
grouped by context, mapping action names to comma-separated key lists:

	keybinds:
	  global:
	    quit: "q,ctrl+c"
	    open_search: "ctrl+f"
	  navigation:
	    go_to_top: "g,home"
	    go_to_bottom: "G,end"
	  schema:
	    cycle_media_type: "t"

# Reserved Keys

ctrl+c always quits. It is re-registered after overrides are applied and
the validator reports an error if a registry loses it.

# Example Usage

	registry := NewDefaultRegistry()

	result, err := ApplyOverrides(registry, cfg.Keybinds)
	if err != nil {
		return err
	}
	for _, warn := range result.Warnings {
		log.Warn("keybind override", "issue", warn.Error())
	}

	if action, ok := registry.Match(ContextNavigation, "enter"); ok {
		// Dispatch action
	}

# Thread Safety

The Registry is safe for concurrent reads. Writes (Register, Unbind,
ApplyOverrides) must finish before the program starts matching keys.
*/
package keybinds
