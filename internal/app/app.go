package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/vk/nutshell/internal/catalog"
	"github.com/vk/nutshell/internal/config"
	"github.com/vk/nutshell/internal/content"
	"github.com/vk/nutshell/internal/ctxlog"
	"github.com/vk/nutshell/internal/deck"
	"github.com/vk/nutshell/internal/events"
	"github.com/vk/nutshell/internal/hcl"
	"github.com/vk/nutshell/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	events   *events.Client
	title    string
	deck     deck.Deck
	catalog  *catalog.Catalog
}

// NewApp is the constructor for the main application. It registers the
// example modules, loads the slide documents and composes both the deck and
// the catalog from the same registry. Any composition problem is returned.
// A nil loader uses the HCL loader; no modules means the core modules.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	client := events.NewClient(cfg.EventsURL, cfg.FetchTimeout)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(client)
	}
	if err := reg.RegisterModules(modules...); err != nil {
		return nil, fmt.Errorf("failed to register examples: %w", err)
	}
	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Example registry ready.", "groups", reg.Len())

	if loader == nil {
		loader = hcl.NewLoader(cfg.StorybookURL)
	}
	model, err := loader.Load(ctx, deckFS(cfg.DeckPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load slides: %w", err)
	}
	fragments, err := resolveFragments(model, reg)
	if err != nil {
		return nil, err
	}
	d, err := deck.Compose(fragments...)
	if err != nil {
		return nil, fmt.Errorf("failed to compose deck: %w", err)
	}
	cat, err := catalog.Compose(reg.Groups())
	if err != nil {
		return nil, fmt.Errorf("failed to compose catalog: %w", err)
	}
	logger.Debug("Deck and catalog composed.", "steps", len(d), "stories", cat.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		events:   client,
		title:    model.Title,
		deck:     d,
		catalog:  cat,
	}, nil
}

func deckFS(path string) fs.FS {
	if path == "" {
		return content.Deck()
	}
	return os.DirFS(path)
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry { return a.registry }

// Deck returns the composed deck.
func (a *App) Deck() deck.Deck { return a.deck }

// Catalog returns the composed catalog.
func (a *App) Catalog() *catalog.Catalog { return a.catalog }

// Title returns the deck title.
func (a *App) Title() string {
	if a.title == "" {
		return "nutshell"
	}
	return a.title
}

// Close releases the application's network resources.
func (a *App) Close() error {
	return a.events.Close()
}
