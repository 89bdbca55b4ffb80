package examples

import (
	"github.com/vk/nutshell/internal/registry"
	"github.com/vk/nutshell/internal/unit"
)

// Group labels, in the order they are registered.
const (
	GroupState   = "State Hook"
	GroupEffect  = "Effect Hook"
	GroupContext = "Context Hook"
)

// Module implements the registry.Module interface. Remote units read from
// Fetcher.
type Module struct {
	Fetcher unit.Fetcher
}

// Register registers the three example groups with the registry.
func (m *Module) Register(r *registry.Registry) error {
	if err := r.Register(GroupState, StateExamples()...); err != nil {
		return err
	}
	if err := r.Register(GroupEffect, EffectExamples(m.Fetcher)...); err != nil {
		return err
	}
	return r.Register(GroupContext, ContextExamples(m.Fetcher)...)
}

// StateExamples declares the local-only units.
func StateExamples() []*unit.Example {
	return []*unit.Example{
		{ID: "Basic", New: func(unit.Env) unit.Unit {
			return NewCounter(CounterSpec{Label: "Click me"})
		}},
		{ID: "Multiple", New: func(unit.Env) unit.Unit {
			return NewCounter(CounterSpec{Label: "Click A"}, CounterSpec{Label: "Click B", Initial: 10})
		}},
		{ID: "Form", New: func(unit.Env) unit.Unit {
			return NewGreeting("world")
		}},
		{ID: "Array/Object", New: func(unit.Env) unit.Unit {
			return NewTodoList("attend meetup", "meet new friends", "watch memes")
		}},
	}
}

// EffectExamples declares the event lists, one per refresh policy.
func EffectExamples(f unit.Fetcher) []*unit.Example {
	list := func(opts EventListOptions) func(unit.Env) unit.Unit {
		return func(env unit.Env) unit.Unit { return NewEventList(env, f, opts) }
	}
	return []*unit.Example{
		{ID: "componentDidMount", New: list(EventListOptions{Policy: unit.OnMount, Placeholder: true})},
		{ID: "useEffect", New: list(EventListOptions{Policy: unit.EveryRender, Placeholder: true})},
		{ID: "useEffect (log)", New: list(EventListOptions{Policy: unit.EveryRender, Placeholder: true, LogFires: true})},
		{ID: "useEffect (log,once)", New: list(EventListOptions{Policy: unit.OnMount, Placeholder: true, LogFires: true})},
	}
}

// ContextExamples declares the provider/consumer units.
func ContextExamples(f unit.Fetcher) []*unit.Example {
	provider := func(unit.Env) unit.Unit { return NewProvider(f, EventsConsumer) }
	return []*unit.Example{
		{ID: "Class Comps.", New: provider},
		{ID: "Function Comps.", New: provider},
	}
}
