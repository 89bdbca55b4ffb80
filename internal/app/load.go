package app

import (
	"fmt"

	"github.com/vk/nutshell/internal/config"
	"github.com/vk/nutshell/internal/deck"
	"github.com/vk/nutshell/internal/registry"
	"go.uber.org/multierr"
)

// resolveFragments turns every slide document into a deck fragment, binding
// example references to registered examples. All unknown references are
// reported together.
func resolveFragments(model *config.Model, reg *registry.Registry) ([]deck.Fragment, error) {
	var errs error
	fragments := make([]deck.Fragment, 0, len(model.Documents))

	for _, doc := range model.Documents {
		frag := deck.Fragment{Name: doc.Name}
		for _, s := range doc.Slides {
			step := deck.Step{
				Title: s.Title,
				Notes: s.Notes,
				Code:  s.Code,
				Link:  s.Link,
			}
			if s.Example != nil {
				ex, ok := reg.Lookup(s.Example.Group, s.Example.Name)
				if !ok {
					errs = multierr.Append(errs, fmt.Errorf(
						"%s: slide %q references unknown example %q in group %q",
						doc.Name, s.ID, s.Example.Name, s.Example.Group,
					))
					continue
				}
				step.Ref = deck.Ref{Group: s.Example.Group, ID: s.Example.Name}
				step.Example = ex
			}
			frag.Steps = append(frag.Steps, step)
		}
		fragments = append(fragments, frag)
	}

	if errs != nil {
		return nil, fmt.Errorf("failed to resolve slide examples: %w", errs)
	}
	return fragments, nil
}
