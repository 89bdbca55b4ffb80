package deck

import (
	"errors"

	"github.com/vk/nutshell/internal/unit"
)

// ErrEmptyDeck is returned when Compose is called without fragments.
var ErrEmptyDeck = errors.New("deck has no fragments")

// Ref names an example by group label and example ID.
type Ref struct {
	Group string
	ID    string
}

// String returns the reference as "group/id".
func (r Ref) String() string {
	return r.Group + "/" + r.ID
}

// Step is one presentation step: narrative content, optionally with a live
// example.
type Step struct {
	Title string
	Notes []string
	Code  string
	Link  string
	// Ref and Example are both set when the step shows an example.
	Ref     Ref
	Example *unit.Example
}

// HasExample reports whether the step shows a live example.
func (s Step) HasExample() bool {
	return s.Example != nil
}

// Fragment is the ordered output of one slide document.
type Fragment struct {
	Name  string
	Steps []Step
}

// Deck is the flat ordered sequence of steps.
type Deck []Step

// Compose concatenates the steps of every fragment, in order. Fragments
// without steps are allowed; no fragments at all is not.
func Compose(fragments ...Fragment) (Deck, error) {
	if len(fragments) == 0 {
		return nil, ErrEmptyDeck
	}
	n := 0
	for _, f := range fragments {
		n += len(f.Steps)
	}
	d := make(Deck, 0, n)
	for _, f := range fragments {
		d = append(d, f.Steps...)
	}
	return d, nil
}

// Examples returns the examples referenced by the deck, in step order.
// An example used by several steps is listed once per step.
func (d Deck) Examples() []*unit.Example {
	var out []*unit.Example
	for _, s := range d {
		if s.Example != nil {
			out = append(out, s.Example)
		}
	}
	return out
}
