package registry

import (
	"errors"
	"log/slog"

	"github.com/vk/nutshell/internal/unit"
)

// Module is the interface that example packages implement to be registered.
type Module interface {
	Register(r *Registry) error
}

// Group associates a label with an ordered list of examples.
type Group struct {
	Label    string
	Examples []*unit.Example
}

// Example returns the example with the given ID.
func (g *Group) Example(id string) (*unit.Example, bool) {
	for _, ex := range g.Examples {
		if ex != nil && ex.ID == id {
			return ex, true
		}
	}
	return nil, false
}

// Registry holds all registered groups for a single application instance.
type Registry struct {
	groups []*Group
	index  map[string]*Group
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		index: make(map[string]*Group),
	}
}

// Register adds a group. The label must be unique across the registry and
// example IDs must be unique within the group. The order of examples is kept.
func (r *Registry) Register(label string, examples ...*unit.Example) error {
	if label == "" {
		return errors.New("group label must not be empty")
	}
	if _, exists := r.index[label]; exists {
		return &DuplicateGroupError{Label: label}
	}

	seen := make(map[string]struct{}, len(examples))
	for _, ex := range examples {
		if ex == nil {
			continue
		}
		if _, dup := seen[ex.ID]; dup {
			return &DuplicateExampleError{Group: label, ID: ex.ID}
		}
		seen[ex.ID] = struct{}{}
	}

	g := &Group{Label: label, Examples: append([]*unit.Example(nil), examples...)}
	r.groups = append(r.groups, g)
	r.index[label] = g
	slog.Debug("Registering example group.", "label", label, "examples", len(examples))
	return nil
}

// RegisterModules registers every module in order, stopping at the first error.
func (r *Registry) RegisterModules(modules ...Module) error {
	for _, mod := range modules {
		if err := mod.Register(r); err != nil {
			return err
		}
	}
	return nil
}

// Groups returns all groups in registration order.
func (r *Registry) Groups() []*Group {
	return append([]*Group(nil), r.groups...)
}

// Group returns the group with the given label.
func (r *Registry) Group(label string) (*Group, bool) {
	g, ok := r.index[label]
	return g, ok
}

// Lookup returns the example registered as id under label.
func (r *Registry) Lookup(label, id string) (*unit.Example, bool) {
	g, ok := r.index[label]
	if !ok {
		return nil, false
	}
	return g.Example(id)
}

// Len returns the number of registered groups.
func (r *Registry) Len() int {
	return len(r.groups)
}
