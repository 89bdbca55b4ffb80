package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWith_ReplacesAndDoesNotAlias(t *testing.T) {
	base := El("a").With("href", "/one")
	other := base.With("href", "/two")

	v, ok := base.Attr("href")
	require.True(t, ok)
	require.Equal(t, "/one", v)

	v, ok = other.Attr("href")
	require.True(t, ok)
	require.Equal(t, "/two", v)
	require.Len(t, other.Attrs, 1)
}

func TestItemsAndControls(t *testing.T) {
	tree := Fragment(
		El("ul", El("li", Text("A")), El("li", Text("B"))),
		Button("Refresh", "refresh", ""),
		Input("x", "change"),
	)

	if diff := cmp.Diff([]string{"A", "B"}, Items(tree)); diff != "" {
		t.Fatalf("Items() mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, Controls(tree), 2)
}

func TestRenderText(t *testing.T) {
	tree := El("div",
		El("p", Text("You clicked 3 times")),
		Button("Click A", "increment", "0"),
		El("ul", El("li", Text("attend meetup")), El("li", Text("watch memes"))),
		Input("world", "change"),
	)

	want := strings.Join([]string{
		"You clicked 3 times",
		"[Click A]",
		"- attend meetup",
		"- watch memes",
		"[world_]",
		"",
	}, "\n")
	require.Equal(t, want, String(tree))
}

func TestRenderHTML_Controls(t *testing.T) {
	tree := Fragment(
		El("p", Text("Hello, <world>!")),
		Input("a&b", "change"),
		Button("Click B", "increment", "1"),
	)

	var b strings.Builder
	require.NoError(t, RenderHTML(&b, tree))
	out := b.String()

	require.Contains(t, out, "<p>Hello, &lt;world&gt;!</p>")
	require.Contains(t, out, `<input type="text" name="input:change" value="a&amp;b"/>`)
	require.Contains(t, out, `<button type="submit" name="action" value="increment:1">Click B</button>`)
	require.NotContains(t, out, ` on=`)
}

func TestRenderDocument(t *testing.T) {
	var b strings.Builder
	require.NoError(t, RenderDocument(&b, El("html", El("body", Text("hi")))))
	require.True(t, strings.HasPrefix(b.String(), "<!DOCTYPE html>"))
	require.Contains(t, b.String(), "<body>hi</body>")
}

func TestActionEncoding(t *testing.T) {
	name, arg := DecodeAction(EncodeAction("keypress", "Enter"))
	require.Equal(t, "keypress", name)
	require.Equal(t, "Enter", arg)

	name, arg = DecodeAction(EncodeAction("refresh", ""))
	require.Equal(t, "refresh", name)
	require.Empty(t, arg)
}
