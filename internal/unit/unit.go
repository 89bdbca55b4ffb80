package unit

import (
	"context"
	"log/slog"
	"time"

	"github.com/vk/nutshell/internal/view"
)

// Names of actions with a meaning outside a single unit.
const (
	// ActionRefresh triggers a fetch on units with the OnDemand policy.
	ActionRefresh = "refresh"
	// ActionKeypress reports a key press; the key name is the action value.
	ActionKeypress = "keypress"
)

// Unit is a realized example instance.
type Unit interface {
	// Render returns the current view. It is called on every render pass and
	// must not have effects outside the unit's own state.
	Render() view.Node
}

// Action is a user interaction dispatched to a unit.
type Action struct {
	Name  string
	Value string
}

// Actor is implemented by units that react to user actions. Handle reports
// whether the unit's state changed; rejected input is not an error.
type Actor interface {
	Handle(a Action) bool
}

// Refresher is implemented by units whose state is sourced from the remote
// data source.
type Refresher interface {
	Policy() Policy
	// Fetch performs one fetch. It runs off the host loop and must not touch
	// the unit's state.
	Fetch(ctx context.Context) (DataSet, error)
	// Begin records that a fetch was issued.
	Begin()
	// Settle records the outcome of one fetch. It reports whether the unit's
	// data was replaced.
	Settle(ds DataSet, err error) bool
}

// Env carries what a unit may use from its host.
type Env struct {
	Logger *slog.Logger
	Now    func() time.Time
}

// Example declares one demo unit.
type Example struct {
	ID  string
	New func(env Env) Unit
}

// Realize creates a new instance of the example.
func (e *Example) Realize(env Env) Unit {
	if env.Logger == nil {
		env.Logger = slog.Default()
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	return e.New(env)
}

// Fetcher reads one DataSet from the remote data source.
type Fetcher interface {
	Fetch(ctx context.Context) (DataSet, error)
}
