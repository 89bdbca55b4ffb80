package deck

// Navigator is a cursor over a Deck. Moving past either end stays on the
// first or last step.
type Navigator struct {
	deck Deck
	pos  int
}

// NewNavigator creates a cursor on the first step of d.
func NewNavigator(d Deck) *Navigator {
	return &Navigator{deck: d}
}

// Len returns the number of steps.
func (n *Navigator) Len() int { return len(n.deck) }

// Position returns the index of the current step.
func (n *Navigator) Position() int { return n.pos }

// Current returns the current step. It reports false for an empty deck.
func (n *Navigator) Current() (Step, bool) {
	if len(n.deck) == 0 {
		return Step{}, false
	}
	return n.deck[n.pos], true
}

// Next moves forward one step and reports whether the position changed.
func (n *Navigator) Next() bool {
	return n.Goto(n.pos + 1)
}

// Prev moves back one step and reports whether the position changed.
func (n *Navigator) Prev() bool {
	return n.Goto(n.pos - 1)
}

// Goto moves to index i, clamped to the deck, and reports whether the
// position changed.
func (n *Navigator) Goto(i int) bool {
	if len(n.deck) == 0 {
		return false
	}
	i = max(0, min(i, len(n.deck)-1))
	if i == n.pos {
		return false
	}
	n.pos = i
	return true
}

// AtStart reports whether the cursor is on the first step.
func (n *Navigator) AtStart() bool { return n.pos == 0 }

// AtEnd reports whether the cursor is on the last step.
func (n *Navigator) AtEnd() bool { return len(n.deck) == 0 || n.pos == len(n.deck)-1 }
