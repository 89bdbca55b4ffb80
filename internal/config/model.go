package config

// Model is the unified, format-agnostic representation of a deck.
type Model struct {
	Title     string
	Documents []*Document
}

// Document is one slide document. Its slides keep their declaration order.
type Document struct {
	Name   string
	Slides []*Slide
}

// Slide is the format-agnostic representation of a `slide` block.
type Slide struct {
	ID      string
	Title   string
	Notes   []string
	Code    string
	Link    string
	Example *ExampleRef
}

// ExampleRef names a registered example by group label and example name.
type ExampleRef struct {
	Group string
	Name  string
}

// SlideCount returns the number of slides across all documents.
func (m *Model) SlideCount() int {
	n := 0
	for _, d := range m.Documents {
		n += len(d.Slides)
	}
	return n
}
