// Package catalog arranges registered example groups into browsable
// sections of stories, each addressable by a stable ID.
package catalog

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/vk/nutshell/internal/registry"
	"github.com/vk/nutshell/internal/unit"
)

// Story is one browsable example.
type Story struct {
	ID      string
	Group   string
	Name    string
	Example *unit.Example
}

// Section lists the stories of one group, in membership order.
type Section struct {
	Label   string
	Stories []*Story
}

// Catalog is the composed, read-only browsing structure.
type Catalog struct {
	sections []*Section
	index    map[string]*Story
}

// DuplicateStoryError is returned when two examples produce the same story ID.
type DuplicateStoryError struct {
	ID    string
	First string
	Again string
}

func (e *DuplicateStoryError) Error() string {
	return fmt.Sprintf("story id %q is used by both %s and %s", e.ID, e.First, e.Again)
}

// StoryID returns the storybook-style ID of an example, e.g. "state-hook--basic".
func StoryID(group, name string) string {
	return slug.Make(group) + "--" + slug.Make(name)
}

// Compose builds a catalog with one section per group, in the order given.
func Compose(groups []*registry.Group) (*Catalog, error) {
	c := &Catalog{index: make(map[string]*Story)}
	for _, g := range groups {
		if g == nil {
			continue
		}
		sec := &Section{Label: g.Label}
		for _, ex := range g.Examples {
			if ex == nil {
				continue
			}
			s := &Story{ID: StoryID(g.Label, ex.ID), Group: g.Label, Name: ex.ID, Example: ex}
			if prev, dup := c.index[s.ID]; dup {
				return nil, &DuplicateStoryError{
					ID:    s.ID,
					First: prev.Group + "/" + prev.Name,
					Again: s.Group + "/" + s.Name,
				}
			}
			c.index[s.ID] = s
			sec.Stories = append(sec.Stories, s)
		}
		c.sections = append(c.sections, sec)
	}
	return c, nil
}

// Sections returns the sections in group registration order.
func (c *Catalog) Sections() []*Section {
	return append([]*Section(nil), c.sections...)
}

// Lookup returns the story with the given ID.
func (c *Catalog) Lookup(id string) (*Story, bool) {
	s, ok := c.index[id]
	return s, ok
}

// First returns the first story of the first non-empty section.
func (c *Catalog) First() (*Story, bool) {
	for _, sec := range c.sections {
		if len(sec.Stories) > 0 {
			return sec.Stories[0], true
		}
	}
	return nil, false
}

// Len returns the number of stories.
func (c *Catalog) Len() int {
	return len(c.index)
}
