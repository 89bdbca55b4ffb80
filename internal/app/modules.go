package app

import (
	"github.com/vk/nutshell/internal/examples"
	"github.com/vk/nutshell/internal/registry"
	"github.com/vk/nutshell/internal/unit"
)

// coreModules is the definitive list of example modules compiled into the
// binary. Remote examples read from f.
func coreModules(f unit.Fetcher) []registry.Module {
	return []registry.Module{
		&examples.Module{Fetcher: f},
	}
}
