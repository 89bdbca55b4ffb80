package registry

import (
	"context"
	"fmt"

	"github.com/vk/nutshell/internal/ctxlog"
	"go.uber.org/multierr"
)

// ValidateRegistry checks that every registered example can be realized:
// it needs an ID and a constructor. Empty groups are allowed but logged.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs error

	for _, g := range r.groups {
		if len(g.Examples) == 0 {
			logger.Warn("Group has no examples.", "group", g.Label)
		}
		for i, ex := range g.Examples {
			if ex == nil {
				errs = multierr.Append(errs, fmt.Errorf("group %q: example #%d is nil", g.Label, i))
				continue
			}
			if ex.ID == "" {
				errs = multierr.Append(errs, fmt.Errorf("group %q: example #%d has no ID", g.Label, i))
			}
			if ex.New == nil {
				errs = multierr.Append(errs, fmt.Errorf("group %q: example %q has no constructor", g.Label, ex.ID))
			}
		}
	}

	if errs != nil {
		return fmt.Errorf("registry validation failed: %w", errs)
	}
	return nil
}
