package hcl

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/nutshell/internal/config"
	"github.com/vk/nutshell/internal/ctxlog"
	"github.com/vk/nutshell/internal/fsutil"
	"github.com/vk/nutshell/internal/schema"
)

// Extension is the file extension of slide documents.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	storybookURL string
}

// NewLoader creates a new HCL slide loader. storybookURL is exposed to
// documents as `storybook_url` and used by `storybook_link`.
func NewLoader(storybookURL string) *Loader {
	return &Loader{storybookURL: storybookURL}
}

// parsedFile is one decoded document before ordering.
type parsedFile struct {
	path string
	root schema.File
	doc  *config.Document
}

// Load parses every .hcl file in fsys. The `deck` manifest, if any, decides
// which documents are used and in which order.
func (l *Loader) Load(ctx context.Context, fsys fs.FS) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	paths, err := fsutil.FindFilesByExtension(fsys, Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to list slide documents: %w", err)
	}
	logger.Debug("Discovered slide documents.", "count", len(paths))

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	var (
		files        []*parsedFile
		manifest     *schema.Deck
		manifestPath string
	)
	for _, p := range paths {
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide document %s: %w", p, err)
		}
		f, diags := parser.ParseHCL(src, p)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse slide document %s: %w", p, diags)
		}

		pf := &parsedFile{path: p}
		if diags := gohcl.DecodeBody(f.Body, evalCtx, &pf.root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode slide document %s: %w", p, diags)
		}
		if pf.root.Deck != nil {
			if manifest != nil {
				return nil, fmt.Errorf("deck block declared in both %s and %s", manifestPath, p)
			}
			manifest, manifestPath = pf.root.Deck, p
		}
		if pf.doc, err = translateDocument(p, pf.root.Slides); err != nil {
			return nil, err
		}
		files = append(files, pf)
	}

	model := &config.Model{}
	if manifest != nil {
		model.Title = manifest.Title
	}
	if model.Documents, err = order(files, manifest); err != nil {
		return nil, err
	}

	logger.Debug("Slide loading complete.", "documents", len(model.Documents), "slides", model.SlideCount())
	return model, nil
}

// order returns the documents in presentation order.
func order(files []*parsedFile, manifest *schema.Deck) ([]*config.Document, error) {
	if manifest == nil || len(manifest.Documents) == 0 {
		var docs []*config.Document
		for _, f := range files {
			if f.root.Deck != nil && len(f.doc.Slides) == 0 {
				continue
			}
			docs = append(docs, f.doc)
		}
		return docs, nil
	}

	byPath := make(map[string]*parsedFile, len(files))
	for _, f := range files {
		byPath[f.path] = f
	}
	docs := make([]*config.Document, 0, len(manifest.Documents))
	listed := make(map[string]struct{}, len(manifest.Documents))
	for _, name := range manifest.Documents {
		if _, dup := listed[name]; dup {
			return nil, fmt.Errorf("document %q is listed twice in the deck manifest", name)
		}
		listed[name] = struct{}{}
		f, ok := byPath[name]
		if !ok {
			return nil, fmt.Errorf("deck manifest lists unknown document %q", name)
		}
		docs = append(docs, f.doc)
	}
	return docs, nil
}
