package app

import (
	"fmt"
	"io"
	"strings"
)

// List writes the catalog and the deck outline to w.
func (a *App) List(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nStories:\n", a.Title())
	for _, sec := range a.catalog.Sections() {
		fmt.Fprintf(&b, "  %s\n", sec.Label)
		for _, s := range sec.Stories {
			fmt.Fprintf(&b, "    %-40s %s\n", s.ID, s.Name)
		}
	}

	fmt.Fprintf(&b, "\nDeck (%d steps):\n", len(a.deck))
	for i, s := range a.deck {
		line := fmt.Sprintf("  %3d. %s", i+1, s.Title)
		if s.HasExample() {
			line += "  [" + s.Ref.String() + "]"
		}
		b.WriteString(line + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
