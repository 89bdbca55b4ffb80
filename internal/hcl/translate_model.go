// This file translates decoded slide schema structs into the format-agnostic
// model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/vk/nutshell/internal/config"
	"github.com/vk/nutshell/internal/schema"
)

// translateDocument converts the slides of one file, keeping their order.
// Slide IDs must be unique within a document.
func translateDocument(path string, slides []*schema.Slide) (*config.Document, error) {
	doc := &config.Document{Name: path}
	seen := make(map[string]struct{}, len(slides))
	for _, s := range slides {
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("slide %q is declared twice in %s", s.ID, path)
		}
		seen[s.ID] = struct{}{}
		doc.Slides = append(doc.Slides, translateSlide(s))
	}
	return doc, nil
}

// translateSlide converts one slide block. A slide without a title uses its ID.
func translateSlide(s *schema.Slide) *config.Slide {
	out := &config.Slide{
		ID:    s.ID,
		Title: s.Title,
		Notes: s.Notes,
		Code:  s.Code,
		Link:  s.Link,
	}
	if out.Title == "" {
		out.Title = s.ID
	}
	if s.Example != nil {
		out.Example = &config.ExampleRef{Group: s.Example.Group, Name: s.Example.Name}
	}
	return out
}
