package examples

import (
	"context"
	"log/slog"
	"time"

	"github.com/vk/nutshell/internal/unit"
	"github.com/vk/nutshell/internal/view"
)

// EventListOptions configures an EventList.
type EventListOptions struct {
	Policy unit.Policy
	// Placeholder shows "Loading..." while the list is empty.
	Placeholder bool
	// LogFires logs a line every time a fetch fires.
	LogFires bool
}

// EventList shows the names fetched from the remote event source.
type EventList struct {
	unit.Remote
	opts    EventListOptions
	fetcher unit.Fetcher
	logger  *slog.Logger
	now     func() time.Time
}

// NewEventList creates an event list reading from f.
func NewEventList(env unit.Env, f unit.Fetcher, opts EventListOptions) *EventList {
	return &EventList{
		opts:    opts,
		fetcher: f,
		logger:  env.Logger,
		now:     env.Now,
	}
}

func (e *EventList) Policy() unit.Policy { return e.opts.Policy }

func (e *EventList) Fetch(ctx context.Context) (unit.DataSet, error) {
	if e.opts.LogFires {
		e.logger.Info("fired at " + e.now().Format(time.TimeOnly))
	}
	return e.fetcher.Fetch(ctx)
}

func (e *EventList) Render() view.Node {
	if e.opts.Placeholder && e.Data().Len() == 0 {
		return view.El("span", view.Text("Loading..."))
	}
	return eventItems(e.Data())
}

func eventItems(ds unit.DataSet) view.Node {
	ul := view.El("ul")
	for _, name := range ds.Names() {
		ul = ul.Append(view.El("li", view.Text(name)))
	}
	return ul
}
