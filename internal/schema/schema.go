// Package schema holds the gohcl decoding targets of the slide format.
package schema

// Deck is the optional manifest block. When Documents is set it fixes the
// presentation order; otherwise every document is used in natural file order.
type Deck struct {
	Title     string   `hcl:"title,optional"`
	Documents []string `hcl:"documents,optional"`
}

// Example references a registered example from inside a slide.
type Example struct {
	Group string `hcl:"group"`
	Name  string `hcl:"name"`
}

// Slide represents a `slide` block.
type Slide struct {
	ID      string   `hcl:"id,label"`
	Title   string   `hcl:"title,optional"`
	Notes   []string `hcl:"notes,optional"`
	Code    string   `hcl:"code,optional"`
	Link    string   `hcl:"link,optional"`
	Example *Example `hcl:"example,block"`
}

// File is the top-level structure of a slide document.
type File struct {
	Deck   *Deck    `hcl:"deck,block"`
	Slides []*Slide `hcl:"slide,block"`
}
