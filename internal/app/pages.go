package app

import (
	"fmt"

	"github.com/vk/nutshell/internal/catalog"
	"github.com/vk/nutshell/internal/deck"
	"github.com/vk/nutshell/internal/unit"
	"github.com/vk/nutshell/internal/view"
)

func page(title string, body ...view.Node) view.Node {
	return view.El("html",
		view.El("head",
			view.El("meta").With("charset", "utf-8"),
			view.El("title", view.Text(title)),
		),
		view.El("body", body...),
	)
}

// unitForm wraps a unit's view in a form posting back to action. The first
// submit button of a form is the one browsers press on Enter, so a hidden
// button reporting the key comes before the unit's own controls.
func unitForm(action string, v view.Node) view.Node {
	enter := view.Button("", unit.ActionKeypress, "Enter").With("hidden", "hidden")
	return view.El("form", enter, v).
		With("method", "post").
		With("action", action).
		With("class", "example")
}

func catalogNav(c *catalog.Catalog, current string) view.Node {
	nav := view.El("nav")
	for _, sec := range c.Sections() {
		ul := view.El("ul")
		for _, s := range sec.Stories {
			var label view.Node = view.Text(s.Name)
			if s.ID == current {
				label = view.El("strong", label)
			}
			ul = ul.Append(view.El("li", view.Link(storyPath(s.ID), label)))
		}
		nav = nav.Append(view.El("h2", view.Text(sec.Label)), ul)
	}
	return nav
}

func storyPage(title string, c *catalog.Catalog, s *catalog.Story, v view.Node) view.Node {
	return page(s.Group+" / "+s.Name+" · "+title,
		catalogNav(c, s.ID),
		view.El("main",
			view.El("h1", view.Text(s.Name)),
			unitForm(storyPath(s.ID), v),
		),
	)
}

// stepPage renders step n (1-based) of total. v is nil for steps without an
// example.
func stepPage(title string, n, total int, s deck.Step, v *view.Node) view.Node {
	main := view.El("main", view.El("h1", view.Text(s.Title)))
	for _, note := range s.Notes {
		main = main.Append(view.El("p", view.Text(note)))
	}
	if s.Code != "" {
		main = main.Append(view.El("pre", view.El("code", view.Text(s.Code))))
	}
	if v != nil {
		main = main.Append(unitForm(stepPath(n), *v))
	}
	if s.Link != "" {
		main = main.Append(view.Link(s.Link, view.Text("Open Storybook")))
	}

	footer := view.El("footer")
	if n > 1 {
		footer = footer.Append(view.Link(stepPath(n-1), view.Text("Previous")).With("rel", "prev"))
	}
	footer = footer.Append(view.El("span", view.Textf(" %d / %d ", n, total)))
	if n < total {
		footer = footer.Append(view.Link(stepPath(n+1), view.Text("Next")).With("rel", "next"))
	}

	return page(fmt.Sprintf("%s · %d", title, n), main, footer)
}

func storyPath(id string) string { return "/stories/" + id }

func stepPath(n int) string { return fmt.Sprintf("/deck/%d", n) }
