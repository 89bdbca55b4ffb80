// Package view defines the framework-agnostic tree that example units render
// into, together with the plain-text and HTML renderers used by the terminal
// presenter and the web server.
//
// A Node is either an element (Tag set) or a text leaf (Tag empty, Text set).
// An element with an empty Tag and children is a fragment: it groups siblings
// without contributing markup of its own.
//
// Interactive controls carry their behavior as attributes rather than
// callbacks so that a tree can be rendered anywhere:
//
//	view.Button("Click A", "increment", "0") // dispatches Action{Name: "increment", Value: "0"}
//	view.Input("world", "change")           // dispatches Action{Name: "change", Value: <typed text>}
package view
