package examples

import (
	"slices"
	"strconv"
	"strings"

	"github.com/vk/nutshell/internal/unit"
	"github.com/vk/nutshell/internal/view"
)

// Actions understood by the local-only units.
const (
	ActionIncrement = "increment"
	ActionChange    = "change"
	ActionSubmit    = "submit"
)

// Counter is one or more independent click counters.
type Counter struct {
	labels []string
	counts []int
}

// CounterSpec configures one counter of a Counter unit.
type CounterSpec struct {
	Label   string
	Initial int
}

// NewCounter creates a counter unit with one counter per spec.
func NewCounter(specs ...CounterSpec) *Counter {
	c := &Counter{}
	for _, s := range specs {
		c.labels = append(c.labels, s.Label)
		c.counts = append(c.counts, s.Initial)
	}
	return c
}

// Counts returns the current count of every counter.
func (c *Counter) Counts() []int {
	return slices.Clone(c.counts)
}

func (c *Counter) Render() view.Node {
	root := view.El("div")
	for i, n := range c.counts {
		root = root.Append(
			view.El("p", view.Textf("You clicked %d times", n)),
			view.Button(c.labels[i], ActionIncrement, strconv.Itoa(i)),
		)
	}
	return root
}

func (c *Counter) Handle(a unit.Action) bool {
	if a.Name != ActionIncrement {
		return false
	}
	i := 0
	if a.Value != "" {
		var err error
		if i, err = strconv.Atoi(a.Value); err != nil {
			return false
		}
	}
	if i < 0 || i >= len(c.counts) {
		return false
	}
	c.counts[i]++
	return true
}

// Greeting echoes a text field as it is edited.
type Greeting struct {
	value string
}

// NewGreeting creates a greeting unit with the given initial name.
func NewGreeting(initial string) *Greeting {
	return &Greeting{value: initial}
}

func (g *Greeting) Render() view.Node {
	return view.El("div",
		view.El("p", view.Textf("Hello, %s!", g.value)),
		view.Input(g.value, ActionChange),
	)
}

func (g *Greeting) Handle(a unit.Action) bool {
	if a.Name != ActionChange || a.Value == g.value {
		return false
	}
	g.value = a.Value
	return true
}

// TodoList appends the text field to a list on submit. Submitting happens
// through the Add button or by pressing Enter in the field. Blank input is
// ignored and left in the field; duplicates are appended like anything else.
type TodoList struct {
	items []string
	value string
}

// NewTodoList creates a todo list holding the given items.
func NewTodoList(items ...string) *TodoList {
	return &TodoList{items: slices.Clone(items)}
}

// Items returns the list entries in order.
func (l *TodoList) Items() []string {
	return slices.Clone(l.items)
}

// Value returns the current content of the text field.
func (l *TodoList) Value() string {
	return l.value
}

func (l *TodoList) Render() view.Node {
	ul := view.El("ul")
	for _, item := range l.items {
		ul = ul.Append(view.El("li", view.Text(item)))
	}
	return view.El("div",
		ul,
		view.Input(l.value, ActionChange),
		view.Button("Add", ActionSubmit, ""),
	)
}

func (l *TodoList) Handle(a unit.Action) bool {
	switch a.Name {
	case ActionChange:
		if a.Value == l.value {
			return false
		}
		l.value = a.Value
		return true
	case ActionSubmit:
		return l.add()
	case unit.ActionKeypress:
		if a.Value == "Enter" {
			return l.add()
		}
	}
	return false
}

func (l *TodoList) add() bool {
	if strings.TrimSpace(l.value) == "" {
		return false
	}
	items := make([]string, 0, len(l.items)+1)
	l.items = append(append(items, l.items...), l.value)
	l.value = ""
	return true
}
