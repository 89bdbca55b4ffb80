package view

import (
	"io"
	"strings"
)

var blockTags = map[string]bool{
	"div": true, "p": true, "ul": true, "ol": true, "section": true,
	"header": true, "footer": true, "nav": true, "main": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// RenderText writes a plain-text rendering of n, suitable for a terminal.
// Block elements start on their own line, list items are bulleted, buttons
// are bracketed and inputs show their current value.
func RenderText(w io.Writer, n Node) error {
	t := &textRenderer{}
	t.node(n, 0)
	t.breakLine()
	_, err := io.WriteString(w, t.b.String())
	return err
}

// String renders n as plain text.
func String(n Node) string {
	var b strings.Builder
	_ = RenderText(&b, n)
	return b.String()
}

type textRenderer struct {
	b        strings.Builder
	lineOpen bool
}

func (t *textRenderer) write(s string) {
	if s == "" {
		return
	}
	t.b.WriteString(s)
	t.lineOpen = !strings.HasSuffix(s, "\n")
}

func (t *textRenderer) breakLine() {
	if t.lineOpen {
		t.b.WriteByte('\n')
		t.lineOpen = false
	}
}

func (t *textRenderer) node(n Node, depth int) {
	if n.IsText() {
		t.write(n.Text)
		return
	}

	switch n.Tag {
	case "li":
		t.breakLine()
		t.write(strings.Repeat("  ", max(depth-1, 0)) + "- ")
		t.children(n, depth)
		t.breakLine()
	case "ul", "ol":
		t.breakLine()
		t.children(n, depth+1)
		t.breakLine()
	case "button":
		t.write("[" + n.Content() + "]")
	case "input":
		v, _ := n.Attr(AttrVal)
		t.write("[" + v + "_]")
	case "a":
		t.children(n, depth)
		if href, ok := n.Attr(AttrHref); ok {
			t.write(" <" + href + ">")
		}
	case "pre":
		t.breakLine()
		t.write(strings.TrimRight(n.Content(), "\n"))
		t.breakLine()
	case "hr":
		t.breakLine()
		t.write(strings.Repeat("-", 40))
		t.breakLine()
	default:
		block := blockTags[n.Tag]
		if block {
			t.breakLine()
		}
		t.children(n, depth)
		if block {
			t.breakLine()
		}
	}
}

func (t *textRenderer) children(n Node, depth int) {
	for _, c := range n.Children {
		t.node(c, depth)
	}
}
