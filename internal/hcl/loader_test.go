package hcl

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/nutshell/internal/config"
	"github.com/vk/nutshell/internal/testutil"
)

func loadCtx(t *testing.T) context.Context {
	ctx, _ := testutil.Context(t)
	return ctx
}

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func slideIDs(m *config.Model) [][]string {
	var out [][]string
	for _, d := range m.Documents {
		ids := []string{d.Name}
		for _, s := range d.Slides {
			ids = append(ids, s.ID)
		}
		out = append(out, ids)
	}
	return out
}

func TestLoad_NaturalOrderWithoutManifest(t *testing.T) {
	fsys := mapFS(map[string]string{
		"10-closing.hcl": `slide "thanks" {}`,
		"2-state.hcl": `
slide "basic" {}
slide "multiple" {}
`,
		"1-intro.hcl": `slide "hello" { title = "Hello" }`,
	})

	m, err := NewLoader("").Load(loadCtx(t), fsys)
	require.NoError(t, err)

	want := [][]string{
		{"1-intro.hcl", "hello"},
		{"2-state.hcl", "basic", "multiple"},
		{"10-closing.hcl", "thanks"},
	}
	if diff := cmp.Diff(want, slideIDs(m)); diff != "" {
		t.Fatalf("document order mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 4, m.SlideCount())
	require.Equal(t, "thanks", m.Documents[2].Slides[0].Title, "title defaults to the slide id")
}

func TestLoad_ManifestOrderAndFields(t *testing.T) {
	fsys := mapFS(map[string]string{
		"deck.hcl": `
deck {
  title     = "Hooks in a Nutshell"
  documents = ["b.hcl", "a.hcl"]
}
`,
		"a.hcl": `
slide "basic" {
  title = upper("usestate")
  notes = ["State lives in the function.", "Setters replace values."]
  code  = "const [count, setCount] = useState(0)"
  link  = storybook_link("state-hook--basic")
  example {
    group = "State Hook"
    name  = "Basic"
  }
}
`,
		"b.hcl":      `slide "intro" {}`,
		"unused.hcl": `slide "skipped" {}`,
	})

	m, err := NewLoader("https://storybook.example.com/").Load(loadCtx(t), fsys)
	require.NoError(t, err)
	require.Equal(t, "Hooks in a Nutshell", m.Title)
	require.Equal(t, [][]string{{"b.hcl", "intro"}, {"a.hcl", "basic"}}, slideIDs(m))

	want := &config.Slide{
		ID:      "basic",
		Title:   "USESTATE",
		Notes:   []string{"State lives in the function.", "Setters replace values."},
		Code:    "const [count, setCount] = useState(0)",
		Link:    "https://storybook.example.com/?path=/story/state-hook--basic",
		Example: &config.ExampleRef{Group: "State Hook", Name: "Basic"},
	}
	if diff := cmp.Diff(want, m.Documents[1].Slides[0]); diff != "" {
		t.Fatalf("slide mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ManifestWithoutListKeepsNaturalOrder(t *testing.T) {
	fsys := mapFS(map[string]string{
		"0-deck.hcl": `deck { title = "Talk" }`,
		"1-a.hcl":    `slide "a" { link = storybook_link("state-hook--basic") }`,
	})

	m, err := NewLoader("").Load(loadCtx(t), fsys)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1-a.hcl", "a"}}, slideIDs(m))
	require.Equal(t, "/stories/state-hook--basic", m.Documents[0].Slides[0].Link)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name:  "syntax error",
			files: map[string]string{"a.hcl": `slide "a" {`},
			want:  "failed to parse slide document a.hcl",
		},
		{
			name:  "unknown attribute",
			files: map[string]string{"a.hcl": `slide "a" { colour = "red" }`},
			want:  "failed to decode slide document a.hcl",
		},
		{
			name:  "unknown variable",
			files: map[string]string{"a.hcl": `slide "a" { title = nope }`},
			want:  "failed to decode slide document a.hcl",
		},
		{
			name:  "duplicate slide",
			files: map[string]string{"a.hcl": "slide \"a\" {}\nslide \"a\" {}\n"},
			want:  `slide "a" is declared twice in a.hcl`,
		},
		{
			name: "two manifests",
			files: map[string]string{
				"a.hcl": `deck {}`,
				"b.hcl": `deck {}`,
			},
			want: "deck block declared in both a.hcl and b.hcl",
		},
		{
			name:  "unknown document",
			files: map[string]string{"deck.hcl": `deck { documents = ["missing.hcl"] }`},
			want:  `deck manifest lists unknown document "missing.hcl"`,
		},
		{
			name: "document listed twice",
			files: map[string]string{
				"deck.hcl": `deck { documents = ["a.hcl", "a.hcl"] }`,
				"a.hcl":    `slide "a" {}`,
			},
			want: `document "a.hcl" is listed twice`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader("").Load(loadCtx(t), mapFS(tc.files))
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestStoryLink(t *testing.T) {
	require.Equal(t, "/stories/context-hook--function-comps", StoryLink("", "context-hook--function-comps"))
	require.Equal(t, "http://localhost:6006/?path=/story/state-hook--basic", StoryLink("http://localhost:6006", "state-hook--basic"))
}

func TestStoryLink_EscapesIDOnBothTargets(t *testing.T) {
	require.Equal(t, "/stories/a%20b&c", StoryLink("", "a b&c"))
	require.Equal(t, "http://localhost:6006/?path=/story/a+b%26c", StoryLink("http://localhost:6006/", "a b&c"))
}
