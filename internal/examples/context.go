package examples

import (
	"context"

	"github.com/vk/nutshell/internal/unit"
	"github.com/vk/nutshell/internal/view"
)

// ContextValue is what a Provider hands to its consumer: the current events
// and the action that refreshes them.
type ContextValue struct {
	Events  unit.DataSet
	Refresh string
}

// Provider owns the event list and refreshes it only when asked. Its view is
// produced by a consumer that reads the provided value and never touches the
// provider's state directly.
type Provider struct {
	unit.Remote
	fetcher  unit.Fetcher
	consumer func(ContextValue) view.Node
}

// NewProvider creates a provider rendering through consumer.
func NewProvider(f unit.Fetcher, consumer func(ContextValue) view.Node) *Provider {
	return &Provider{fetcher: f, consumer: consumer}
}

func (p *Provider) Policy() unit.Policy { return unit.OnDemand }

func (p *Provider) Fetch(ctx context.Context) (unit.DataSet, error) {
	return p.fetcher.Fetch(ctx)
}

func (p *Provider) Render() view.Node {
	return p.consumer(ContextValue{Events: p.Data(), Refresh: unit.ActionRefresh})
}

// EventsConsumer renders the provided events with a Refresh button.
func EventsConsumer(v ContextValue) view.Node {
	return view.Fragment(
		eventItems(v.Events),
		view.Button("Refresh", v.Refresh, ""),
	)
}
