package view

import (
	"fmt"
	"strings"
)

// Attribute keys understood by the renderers.
const (
	AttrOn   = "on"   // action dispatched by a control
	AttrArg  = "arg"  // argument carried by a button's action
	AttrHref = "href" // link target
	AttrVal  = "value"
)

// Attr is a single key/value attribute on an element.
type Attr struct {
	Key string
	Val string
}

// Node is one element or text leaf of a view tree.
type Node struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []Node
}

// El creates an element node.
func El(tag string, children ...Node) Node {
	return Node{Tag: tag, Children: children}
}

// Text creates a text leaf.
func Text(s string) Node {
	return Node{Text: s}
}

// Textf creates a formatted text leaf.
func Textf(format string, args ...any) Node {
	return Node{Text: fmt.Sprintf(format, args...)}
}

// Fragment groups sibling nodes without adding an element of its own.
func Fragment(children ...Node) Node {
	return Node{Children: children}
}

// Button creates a button that dispatches the named action with arg.
func Button(label, on, arg string) Node {
	n := El("button", Text(label)).With(AttrOn, on)
	if arg != "" {
		n = n.With(AttrArg, arg)
	}
	return n
}

// Input creates a single-line text field. Edits dispatch the named action
// with the field's new content.
func Input(value, on string) Node {
	return El("input").With(AttrVal, value).With(AttrOn, on)
}

// Link creates an anchor to href.
func Link(href string, children ...Node) Node {
	return El("a", children...).With(AttrHref, href)
}

// IsText reports whether n is a text leaf.
func (n Node) IsText() bool {
	return n.Tag == "" && len(n.Children) == 0
}

// With returns a copy of n with the attribute set, replacing an existing
// value for the same key.
func (n Node) With(key, val string) Node {
	attrs := make([]Attr, 0, len(n.Attrs)+1)
	for _, a := range n.Attrs {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	n.Attrs = append(attrs, Attr{Key: key, Val: val})
	return n
}

// Attr returns the value of the attribute named key.
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Append returns a copy of n with children added after the existing ones.
func (n Node) Append(children ...Node) Node {
	kids := make([]Node, 0, len(n.Children)+len(children))
	kids = append(kids, n.Children...)
	n.Children = append(kids, children...)
	return n
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Find returns every element with the given tag, in document order.
func Find(n Node, tag string) []Node {
	var found []Node
	Walk(n, func(c Node) bool {
		if c.Tag == tag {
			found = append(found, c)
		}
		return true
	})
	return found
}

// Content returns the concatenated text of n and its descendants.
func (n Node) Content() string {
	var b strings.Builder
	Walk(n, func(c Node) bool {
		if c.IsText() {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// Items returns the text content of every list item under n.
func Items(n Node) []string {
	var items []string
	for _, li := range Find(n, "li") {
		items = append(items, li.Content())
	}
	return items
}

// Controls returns every element under n that dispatches an action.
func Controls(n Node) []Node {
	var found []Node
	Walk(n, func(c Node) bool {
		if _, ok := c.Attr(AttrOn); ok {
			found = append(found, c)
		}
		return true
	})
	return found
}
