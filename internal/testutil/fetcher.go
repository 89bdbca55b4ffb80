package testutil

import (
	"context"
	"sync"

	"github.com/vk/nutshell/internal/unit"
)

// Response is one scripted fetch outcome.
type Response struct {
	Data unit.DataSet
	Err  error
}

// ScriptedFetcher is a unit.Fetcher returning scripted responses in call
// order. Once the script runs out the last response repeats; with no script
// every call returns an empty DataSet.
type ScriptedFetcher struct {
	mu        sync.Mutex
	calls     int
	responses []Response
}

// NewScriptedFetcher creates a fetcher answering with responses in order.
func NewScriptedFetcher(responses ...Response) *ScriptedFetcher {
	return &ScriptedFetcher{responses: responses}
}

// Names builds a successful response listing the given names.
func Names(names ...string) Response {
	ds := make(unit.DataSet, len(names))
	for i, n := range names {
		ds[i] = unit.Record{Name: n}
	}
	return Response{Data: ds}
}

// Fetch implements unit.Fetcher.
func (f *ScriptedFetcher) Fetch(_ context.Context) (unit.DataSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if len(f.responses) == 0 {
		return unit.DataSet{}, nil
	}
	i := min(f.calls, len(f.responses)) - 1
	r := f.responses[i]
	return r.Data, r.Err
}

// Calls returns how many times Fetch was called.
func (f *ScriptedFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
