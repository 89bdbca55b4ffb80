// Package host is the hosting view layer for example units. A Host realizes
// units under string keys, runs their render passes, dispatches user actions
// and fires refreshes according to each unit's policy.
//
// A Host is not safe for concurrent use. Drive it from a single goroutine,
// normally through a Loop, and give it that Loop as its Scheduler so fetch
// completions are applied on the same goroutine.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vk/nutshell/internal/ctxlog"
	"github.com/vk/nutshell/internal/unit"
	"github.com/vk/nutshell/internal/view"
)

// ErrNotMounted is returned for operations on a key with no mounted unit.
var ErrNotMounted = errors.New("no unit mounted")

// Host owns the realized instances of one consumer (the deck or the catalog).
type Host struct {
	name   string
	sched  Scheduler
	logger *slog.Logger
	now    func() time.Time
	mounts map[string]*Mount

	onSettle func(key string, v view.Node)
}

// Mount is one realized unit.
type Mount struct {
	key      string
	example  *unit.Example
	unit     unit.Unit
	instance string
	logger   *slog.Logger
	alive    bool
	renders  int
}

// Key returns the key the unit is mounted under.
func (m *Mount) Key() string { return m.key }

// Example returns the example the unit was realized from.
func (m *Mount) Example() *unit.Example { return m.example }

// Unit returns the realized unit.
func (m *Mount) Unit() unit.Unit { return m.unit }

// Instance returns the unique ID of this realization.
func (m *Mount) Instance() string { return m.instance }

// Renders returns how many render passes the unit went through.
func (m *Mount) Renders() int { return m.renders }

// New creates a host. name only labels log lines.
func New(name string, sched Scheduler, logger *slog.Logger) *Host {
	return &Host{
		name:   name,
		sched:  sched,
		logger: logger.With("host", name),
		now:    time.Now,
		mounts: make(map[string]*Mount),
	}
}

// Mount realizes ex under key. Mounting the same example under the same key
// again returns the existing instance; a different example replaces it.
// Units with the OnMount policy fetch here, once per realization.
func (h *Host) Mount(key string, ex *unit.Example) *Mount {
	if m, ok := h.mounts[key]; ok {
		if m.example == ex {
			return m
		}
		h.Unmount(key)
	}

	instance := uuid.NewString()
	logger := h.logger.With("mount", key, "example", ex.ID, "instance", instance)
	m := &Mount{
		key:      key,
		example:  ex,
		instance: instance,
		logger:   logger,
		alive:    true,
	}
	m.unit = ex.Realize(unit.Env{Logger: logger, Now: h.now})
	h.mounts[key] = m
	logger.Debug("Unit mounted.")

	if r, ok := m.unit.(unit.Refresher); ok && r.Policy() == unit.OnMount {
		h.refresh(m, r)
	}
	return m
}

// OnSettle registers fn to run, on the host's goroutine, after a refresh
// replaced a mounted unit's data. fn receives the view of the render pass
// that followed.
func (h *Host) OnSettle(fn func(key string, v view.Node)) {
	h.onSettle = fn
}

// Lookup returns the unit mounted under key.
func (h *Host) Lookup(key string) (*Mount, bool) {
	m, ok := h.mounts[key]
	return m, ok
}

// Keys returns the mounted keys in sorted order.
func (h *Host) Keys() []string {
	keys := make([]string, 0, len(h.mounts))
	for k := range h.mounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render runs one render pass of the unit under key.
func (h *Host) Render(key string) (view.Node, error) {
	m, ok := h.mounts[key]
	if !ok {
		return view.Node{}, fmt.Errorf("render %q: %w", key, ErrNotMounted)
	}
	return h.renderPass(m), nil
}

// Dispatch delivers actions to the unit under key, in order. A refresh
// action fires a fetch on OnDemand units; any other action goes to the unit
// itself. Every state change is followed by a render pass. Dispatch reports
// whether any action changed the unit's state.
func (h *Host) Dispatch(key string, actions ...unit.Action) (bool, error) {
	m, ok := h.mounts[key]
	if !ok {
		return false, fmt.Errorf("dispatch to %q: %w", key, ErrNotMounted)
	}

	changed := false
	for _, a := range actions {
		if a.Name == unit.ActionRefresh {
			if r, ok := m.unit.(unit.Refresher); ok && r.Policy() == unit.OnDemand {
				h.refresh(m, r)
				continue
			}
		}
		actor, ok := m.unit.(unit.Actor)
		if !ok {
			m.logger.Debug("Unit ignores actions.", "action", a.Name)
			continue
		}
		if actor.Handle(a) {
			changed = true
			h.renderPass(m)
		} else {
			m.logger.Debug("Action left state unchanged.", "action", a.Name)
		}
	}
	return changed, nil
}

// Unmount tears down the unit under key. Fetches still in flight for it are
// not cancelled; their results are dropped when they arrive.
func (h *Host) Unmount(key string) {
	m, ok := h.mounts[key]
	if !ok {
		return
	}
	m.alive = false
	delete(h.mounts, key)
	m.logger.Debug("Unit unmounted.", "renders", m.renders)
}

// UnmountAll tears down every mounted unit.
func (h *Host) UnmountAll() {
	for _, key := range h.Keys() {
		h.Unmount(key)
	}
}

// UnmountExcept tears down every unit not mounted under key.
func (h *Host) UnmountExcept(key string) {
	for _, k := range h.Keys() {
		if k != key {
			h.Unmount(k)
		}
	}
}

func (h *Host) renderPass(m *Mount) view.Node {
	m.renders++
	v := m.unit.Render()
	if r, ok := m.unit.(unit.Refresher); ok && r.Policy() == unit.EveryRender {
		h.refresh(m, r)
	}
	return v
}

func (h *Host) refresh(m *Mount, r unit.Refresher) {
	r.Begin()
	m.logger.Debug("Refresh issued.", "policy", r.Policy())

	h.sched.Go(func(ctx context.Context) func() {
		ctx = ctxlog.With(ctxlog.WithLogger(ctx, m.logger), "policy", r.Policy())
		ds, err := r.Fetch(ctx)
		return func() {
			if !m.alive {
				m.logger.Debug("Dropping refresh result for unmounted unit.")
				return
			}
			if r.Settle(ds, err) {
				m.logger.Debug("Refresh settled.", "records", ds.Len())
				v := h.renderPass(m)
				if h.onSettle != nil {
					h.onSettle(m.key, v)
				}
				return
			}
			m.logger.Warn("Refresh failed, keeping previous data.", "error", err)
		}
	})
}
