package examples

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nutshell/internal/host"
	"github.com/vk/nutshell/internal/registry"
	"github.com/vk/nutshell/internal/testutil"
	"github.com/vk/nutshell/internal/unit"
	"github.com/vk/nutshell/internal/view"
)

func TestTodoList_RejectsBlankInput(t *testing.T) {
	l := NewTodoList("attend meetup", "meet new friends", "watch memes")
	before := l.Items()

	for _, blank := range []string{"", "   ", "\t\n"} {
		l.Handle(unit.Action{Name: ActionChange, Value: blank})
		require.False(t, l.Handle(unit.Action{Name: ActionSubmit}))
		require.False(t, l.Handle(unit.Action{Name: unit.ActionKeypress, Value: "Enter"}))
		require.Equal(t, before, l.Items())
		require.Equal(t, blank, l.Value(), "rejected input stays in the field")
	}
}

func TestTodoList_AppendsDuplicates(t *testing.T) {
	l := NewTodoList("attend meetup", "meet new friends", "watch memes")

	l.Handle(unit.Action{Name: ActionChange, Value: "meet new friends"})
	require.True(t, l.Handle(unit.Action{Name: ActionSubmit}))
	require.Empty(t, l.Value())

	require.Equal(t, []string{
		"attend meetup", "meet new friends", "watch memes", "meet new friends",
	}, view.Items(l.Render()))
}

func TestTodoList_EnterSubmitsOtherKeysDoNot(t *testing.T) {
	l := NewTodoList()
	l.Handle(unit.Action{Name: ActionChange, Value: "write slides"})

	require.False(t, l.Handle(unit.Action{Name: unit.ActionKeypress, Value: "a"}))
	require.Empty(t, l.Items())

	require.True(t, l.Handle(unit.Action{Name: unit.ActionKeypress, Value: "Enter"}))
	require.Equal(t, []string{"write slides"}, l.Items())
}

func TestCounter_IndependentCounts(t *testing.T) {
	c := NewCounter(CounterSpec{Label: "Click A"}, CounterSpec{Label: "Click B", Initial: 10})

	require.True(t, c.Handle(unit.Action{Name: ActionIncrement, Value: "1"}))
	require.True(t, c.Handle(unit.Action{Name: ActionIncrement, Value: "0"}))
	require.True(t, c.Handle(unit.Action{Name: ActionIncrement, Value: "1"}))
	require.False(t, c.Handle(unit.Action{Name: ActionIncrement, Value: "2"}))
	require.False(t, c.Handle(unit.Action{Name: ActionIncrement, Value: "x"}))

	require.Equal(t, []int{1, 12}, c.Counts())
	require.Contains(t, view.String(c.Render()), "You clicked 12 times")
	require.Len(t, view.Controls(c.Render()), 2)
}

func TestGreeting(t *testing.T) {
	g := NewGreeting("world")
	require.Contains(t, view.String(g.Render()), "Hello, world!")

	require.False(t, g.Handle(unit.Action{Name: ActionChange, Value: "world"}))
	require.True(t, g.Handle(unit.Action{Name: ActionChange, Value: "Surabaya"}))
	require.Contains(t, view.String(g.Render()), "Hello, Surabaya!")
}

func TestEventList_PlaceholderUntilLoaded(t *testing.T) {
	logger, _ := testutil.NewLogger(t)
	env := unit.Env{Logger: logger, Now: time.Now}
	e := NewEventList(env, testutil.NewScriptedFetcher(), EventListOptions{Policy: unit.OnMount, Placeholder: true})

	require.Equal(t, "Loading...", e.Render().Content())

	e.Begin()
	e.Settle(unit.DataSet{{Name: "A"}}, nil)
	require.Equal(t, []string{"A"}, view.Items(e.Render()))
}

func TestEventList_LogsEachFire(t *testing.T) {
	logger, buf := testutil.NewLogger(t)
	at := time.Date(2019, 6, 1, 19, 30, 5, 0, time.UTC)
	env := unit.Env{Logger: logger, Now: func() time.Time { return at }}
	e := NewEventList(env, testutil.NewScriptedFetcher(), EventListOptions{Policy: unit.EveryRender, LogFires: true})

	_, err := e.Fetch(t.Context())
	require.NoError(t, err)
	require.Contains(t, buf.String(), `msg="fired at 19:30:05"`)
}

func newCatalogHost(t *testing.T, f unit.Fetcher) (*host.Host, *testutil.ManualScheduler, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.RegisterModules(&Module{Fetcher: f}))

	logger, _ := testutil.NewLogger(t)
	sched := &testutil.ManualScheduler{}
	return host.New("catalog", sched, logger), sched, reg
}

func TestModule_RegistersGroupsInOrder(t *testing.T) {
	_, _, reg := newCatalogHost(t, testutil.NewScriptedFetcher())

	var got []string
	for _, g := range reg.Groups() {
		got = append(got, g.Label)
	}
	require.Equal(t, []string{GroupState, GroupEffect, GroupContext}, got)

	g, ok := reg.Group(GroupEffect)
	require.True(t, ok)
	require.Len(t, g.Examples, 4)
	require.Equal(t, "componentDidMount", g.Examples[0].ID)
	require.NoError(t, reg.ValidateRegistry(t.Context()))
}

func TestContext_OnDemandRefresh(t *testing.T) {
	f := testutil.NewScriptedFetcher(
		testutil.Names("A", "B"),
		testutil.Response{Err: errors.New("offline")},
	)
	h, sched, reg := newCatalogHost(t, f)
	ex, ok := reg.Lookup(GroupContext, "Function Comps.")
	require.True(t, ok)

	h.Mount("story", ex)
	v, err := h.Render("story")
	require.NoError(t, err)
	assert.Empty(t, view.Items(v), "no data before the first refresh")
	assert.Zero(t, f.Calls())

	_, err = h.Dispatch("story", unit.Action{Name: unit.ActionRefresh})
	require.NoError(t, err)
	sched.ResolveAll()

	v, err = h.Render("story")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, view.Items(v))

	_, err = h.Dispatch("story", unit.Action{Name: unit.ActionRefresh})
	require.NoError(t, err)
	sched.ResolveAll()

	v, err = h.Render("story")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, view.Items(v))
}

func TestEffect_UseEffectFetchesOnEveryRender(t *testing.T) {
	f := testutil.NewScriptedFetcher(testutil.Names("A"))
	h, sched, reg := newCatalogHost(t, f)
	ex, ok := reg.Lookup(GroupEffect, "useEffect")
	require.True(t, ok)

	h.Mount("story", ex)
	for i := 0; i < 3; i++ {
		v, err := h.Render("story")
		require.NoError(t, err)
		assert.Equal(t, "Loading...", v.Content())
	}
	assert.Equal(t, 3, f.Calls())
	assert.Equal(t, 3, sched.Pending())
}

func TestDeckAndCatalogInstancesAreIndependent(t *testing.T) {
	f := testutil.NewScriptedFetcher()
	catalogHost, _, reg := newCatalogHost(t, f)
	logger, _ := testutil.NewLogger(t)
	deckHost := host.New("deck", &testutil.ManualScheduler{}, logger)

	ex, ok := reg.Lookup(GroupState, "Array/Object")
	require.True(t, ok)
	catalogHost.Mount("story", ex)
	deckHost.Mount("step-3", ex)

	_, err := catalogHost.Dispatch("story",
		unit.Action{Name: ActionChange, Value: "only in the catalog"},
		unit.Action{Name: ActionSubmit},
	)
	require.NoError(t, err)

	deckView, err := deckHost.Render("step-3")
	require.NoError(t, err)
	assert.NotContains(t, view.Items(deckView), "only in the catalog")

	catalogView, err := catalogHost.Render("story")
	require.NoError(t, err)
	assert.Contains(t, view.Items(catalogView), "only in the catalog")
}
