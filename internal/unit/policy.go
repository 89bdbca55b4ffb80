package unit

import (
	"errors"
	"fmt"
)

// Policy decides when a remote unit fetches.
type Policy int

const (
	// OnMount fetches once when the instance is realized.
	OnMount Policy = iota
	// EveryRender fetches after every render pass. Each successful fetch
	// replaces the unit's data, which causes another render pass, so the
	// fetching never stops while the unit is mounted.
	EveryRender
	// OnDemand fetches only when the user asks for it.
	OnDemand
)

func (p Policy) String() string {
	switch p {
	case OnMount:
		return "on-mount"
	case EveryRender:
		return "every-render"
	case OnDemand:
		return "on-demand"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Phase is where a remote unit is in its refresh cycle.
type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
	// Stale means the last fetch failed; the data is whatever was Ready
	// before, or the initial empty DataSet.
	Stale
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Stale:
		return "stale"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Remote holds the state of a remote-refresh unit. Units embed it and
// supply Policy and Fetch themselves.
//
// Completions are applied in the order they arrive: when several fetches
// overlap, the last one to settle successfully wins regardless of the order
// they were issued in.
type Remote struct {
	phase    Phase
	data     DataSet
	inflight int
	fetches  int
	lastErr  error
}

// Begin records that a fetch was issued.
func (r *Remote) Begin() {
	r.inflight++
	r.fetches++
	r.phase = Loading
}

// Settle records the outcome of one fetch and reports whether the data was
// replaced. A failed fetch leaves the data untouched.
func (r *Remote) Settle(ds DataSet, err error) bool {
	if r.inflight > 0 {
		r.inflight--
	}

	replaced := false
	if err != nil {
		var fe *FetchError
		if !errors.As(err, &fe) {
			err = &FetchError{Err: err}
		}
		r.lastErr = err
	} else {
		if ds == nil {
			ds = DataSet{}
		}
		r.data = ds
		r.lastErr = nil
		replaced = true
	}

	switch {
	case r.inflight > 0:
		r.phase = Loading
	case r.lastErr != nil:
		r.phase = Stale
	default:
		r.phase = Ready
	}
	return replaced
}

// Phase returns the current phase.
func (r *Remote) Phase() Phase { return r.phase }

// Data returns the current DataSet.
func (r *Remote) Data() DataSet { return r.data }

// Err returns the error of the last settled fetch, if it failed.
func (r *Remote) Err() error { return r.lastErr }

// Fetches returns how many fetches were issued.
func (r *Remote) Fetches() int { return r.fetches }

// InFlight returns how many fetches have not settled yet.
func (r *Remote) InFlight() int { return r.inflight }
