package config

import (
	"context"
	"io/fs"
)

// Loader is the interface for a format-specific slide loader.
type Loader interface {
	// Load reads every slide document found in fsys and translates them into
	// the format-agnostic model, with documents in presentation order.
	Load(ctx context.Context, fsys fs.FS) (*Model, error)
}
