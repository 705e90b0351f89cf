package gamedata

import "errors"

// ErrNoActions is returned when an action list resolves to nothing.
var ErrNoActions = errors.New("battle menu has no actions")

// =============================================================================
// ActionRegistry
// =============================================================================

// ActionRegistry holds the battle menu in display order.
type ActionRegistry struct {
	all []ActionDef
}

// NewActionRegistry creates a registry from action definitions.
func NewActionRegistry(actions []ActionDef) (*ActionRegistry, error) {
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	return &ActionRegistry{all: actions}, nil
}

// MustNewActionRegistry creates a registry, panicking on error.
func MustNewActionRegistry(actions []ActionDef) *ActionRegistry {
	registry, err := NewActionRegistry(actions)
	if err != nil {
		panic(err)
	}
	return registry
}


// At returns the action at menu position i, or nil if out of range.
func (r *ActionRegistry) At(i int) *ActionDef {
	if i < 0 || i >= len(r.all) {
		return nil
	}
	return &r.all[i]
}

// Names returns the action names in menu order.
func (r *ActionRegistry) Names() []string {
	names := make([]string, len(r.all))
	for i := range r.all {
		names[i] = r.all[i].Name
	}
	return names
}

// Count returns the number of actions in the registry.
func (r *ActionRegistry) Count() int {
	return len(r.all)
}
