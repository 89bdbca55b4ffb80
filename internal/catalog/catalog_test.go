package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/nutshell/internal/registry"
	"github.com/vk/nutshell/internal/unit"
)

func example(id string) *unit.Example {
	return &unit.Example{ID: id, New: func(unit.Env) unit.Unit { return nil }}
}

func TestStoryID(t *testing.T) {
	require.Equal(t, "state-hook--basic", StoryID("State Hook", "Basic"))
	require.Equal(t, "state-hook--array-object", StoryID("State Hook", "Array/Object"))
}

func TestCompose_KeepsRegistrationOrder(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("State Hook", example("Basic"), example("Multiple")))
	require.NoError(t, reg.Register("Context Hook", example("Function Comps.")))

	c, err := Compose(reg.Groups())
	require.NoError(t, err)

	var got [][]string
	for _, sec := range c.Sections() {
		ids := []string{sec.Label}
		for _, s := range sec.Stories {
			ids = append(ids, s.ID)
		}
		got = append(got, ids)
	}
	want := [][]string{
		{"State Hook", "state-hook--basic", "state-hook--multiple"},
		{"Context Hook", "context-hook--function-comps"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}

	first, ok := c.First()
	require.True(t, ok)
	require.Equal(t, "Basic", first.Name)
	require.Equal(t, 3, c.Len())
}

func TestCompose_SharesExampleDeclarations(t *testing.T) {
	reg := registry.New()
	basic := example("Basic")
	require.NoError(t, reg.Register("State Hook", basic))

	c, err := Compose(reg.Groups())
	require.NoError(t, err)

	s, ok := c.Lookup("state-hook--basic")
	require.True(t, ok)
	require.Same(t, basic, s.Example)

	_, ok = c.Lookup("state-hook--missing")
	require.False(t, ok)
}

func TestCompose_DuplicateStoryID(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("State Hook", example("Array/Object"), example("Array Object")))

	_, err := Compose(reg.Groups())
	var dup *DuplicateStoryError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "state-hook--array-object", dup.ID)
}

func TestCompose_Empty(t *testing.T) {
	c, err := Compose(nil)
	require.NoError(t, err)
	_, ok := c.First()
	require.False(t, ok)
}
