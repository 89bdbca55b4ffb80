package view

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Form field conventions used by the HTML rendering of controls. A button
// submits FieldAction with "name" or "name:arg"; an input submits its text
// under FieldInputPrefix+name.
const (
	FieldAction      = "action"
	FieldInputPrefix = "input:"
)

// EncodeAction joins an action name and its argument into a form value.
func EncodeAction(name, arg string) string {
	if arg == "" {
		return name
	}
	return name + ":" + arg
}

// DecodeAction splits a form value produced by EncodeAction.
func DecodeAction(v string) (name, arg string) {
	name, arg, _ = strings.Cut(v, ":")
	return name, arg
}

// RenderHTML writes n as an HTML fragment. Controls become form elements
// following the FieldAction and FieldInputPrefix conventions; the caller is
// expected to wrap them in a form.
func RenderHTML(w io.Writer, n Node) error {
	root := &html.Node{Type: html.DocumentNode}
	appendHTML(root, n)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

// RenderDocument writes n as a complete HTML5 document.
func RenderDocument(w io.Writer, n Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	appendHTML(doc, n)
	return html.Render(w, doc)
}

func appendHTML(parent *html.Node, n Node) {
	if n.IsText() {
		if n.Text != "" {
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
		}
		return
	}
	if n.Tag == "" {
		for _, c := range n.Children {
			appendHTML(parent, c)
		}
		return
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttrs(n),
	}
	parent.AppendChild(el)
	for _, c := range n.Children {
		appendHTML(el, c)
	}
}

func htmlAttrs(n Node) []html.Attribute {
	on, interactive := n.Attr(AttrOn)
	var attrs []html.Attribute

	switch {
	case interactive && n.Tag == "button":
		arg, _ := n.Attr(AttrArg)
		attrs = append(attrs,
			html.Attribute{Key: "type", Val: "submit"},
			html.Attribute{Key: "name", Val: FieldAction},
			html.Attribute{Key: "value", Val: EncodeAction(on, arg)},
		)
	case interactive && n.Tag == "input":
		v, _ := n.Attr(AttrVal)
		attrs = append(attrs,
			html.Attribute{Key: "type", Val: "text"},
			html.Attribute{Key: "name", Val: FieldInputPrefix + on},
			html.Attribute{Key: "value", Val: v},
		)
	}

	for _, a := range n.Attrs {
		switch a.Key {
		case AttrOn, AttrArg:
			continue
		case AttrVal:
			if interactive {
				continue
			}
		}
		attrs = append(attrs, html.Attribute{Key: a.Key, Val: a.Val})
	}
	return attrs
}
