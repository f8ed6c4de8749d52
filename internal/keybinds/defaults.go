package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNavigationBindings(r)
	registerSchemaBindings(r)
	registerSearchBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all contexts
func registerGlobalBindings(r *Registry) {
	r.RegisterMultiple(ContextGlobal, []string{"q", "ctrl+c"}, ActionQuit)
	r.RegisterMultiple(ContextGlobal, []string{"tab", "]"}, ActionFocusNext)
	r.RegisterMultiple(ContextGlobal, []string{"shift+tab", "["}, ActionFocusPrev)
	r.Register(ContextGlobal, "/", ActionOpenSearch)
	r.Register(ContextGlobal, "r", ActionReload)
}

// registerNavigationBindings sets up bindings for the operation list pane
func registerNavigationBindings(r *Registry) {
	r.RegisterMultiple(ContextNavigation, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextNavigation, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextNavigation, "pgup", ActionPageUp)
	r.Register(ContextNavigation, "pgdown", ActionPageDown)
	r.Register(ContextNavigation, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextNavigation, "ctrl+d", ActionHalfPageDown)
	r.RegisterMultiple(ContextNavigation, []string{"g", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextNavigation, []string{"G", "end"}, ActionGoToBottom)
	r.Register(ContextNavigation, "enter", ActionSubmit)
	r.Register(ContextNavigation, "y", ActionYank)
}

// registerSchemaBindings sets up bindings for the schema viewer panes
func registerSchemaBindings(r *Registry) {
	r.RegisterMultiple(ContextSchema, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextSchema, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextSchema, "pgup", ActionPageUp)
	r.Register(ContextSchema, "pgdown", ActionPageDown)
	r.Register(ContextSchema, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextSchema, "ctrl+d", ActionHalfPageDown)
	r.RegisterMultiple(ContextSchema, []string{"g", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextSchema, []string{"G", "end"}, ActionGoToBottom)
	r.Register(ContextSchema, "enter", ActionSubmit)
	r.Register(ContextSchema, "y", ActionYank)
	r.Register(ContextSchema, "t", ActionCycleMediaType)
	r.Register(ContextSchema, "s", ActionCycleStatus)
}

// registerSearchBindings sets up bindings for the search overlay.
// Printable keys are consumed by the text input before matching, so only
// control keys appear here.
func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "esc", ActionCancel)
	r.Register(ContextSearch, "enter", ActionSubmit)
	r.Register(ContextSearch, "up", ActionNavigateUp)
	r.Register(ContextSearch, "down", ActionNavigateDown)
}
