package input

import (
	"fmt"
	"strings"
)

// Registry maps input names to inputs so dropdowns can be linked by selector.
// Selectors are the input name, optionally prefixed with '#'.
type Registry struct {
	inputs map[string]*Linked
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{inputs: make(map[string]*Linked)}
}

// Register adds an input under its name, replacing any previous one
func (r *Registry) Register(l *Linked) {
	r.inputs[l.Name()] = l
}

// Lookup resolves a selector to an input. Closed inputs are not found.
func (r *Registry) Lookup(selector string) (Handle, error) {
	name := strings.TrimPrefix(strings.TrimSpace(selector), "#")
	if name == "" {
		return nil, fmt.Errorf("empty selector %q", selector)
	}
	l, ok := r.inputs[name]
	if !ok || l.Closed() {
		return nil, fmt.Errorf("no input matches selector %q", selector)
	}
	return l, nil
}
