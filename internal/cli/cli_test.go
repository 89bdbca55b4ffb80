package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nutshell/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Run(context.Background(), append([]string{"nutshell"}, args...), strings.NewReader(""), &out, &errOut)
	return out.String(), err
}

func TestRun_Help(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "--log-level")
}

func TestRun_UnknownFlagIsUsageError(t *testing.T) {
	_, err := run(t, "--this-is-not-a-valid-flag")
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "flag provided but not defined")
}

func TestRun_InvalidConfigIsUsageError(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "list")
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, `unknown log level "loud"`)
}

func TestRun_List(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Hooks in a Nutshell")
	assert.Contains(t, out, "context-hook--class-comps")
}

func TestRun_ListCustomDeck(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"talk.hcl": `
deck { title = "Lightning talk" }
slide "only" {
  title = "Counters"
  example {
    group = "State Hook"
    name  = "Multiple"
  }
}
`,
	})

	out, err := run(t, "--deck", dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lightning talk")
	assert.Contains(t, out, "Deck (1 steps):")
	assert.Contains(t, out, "[State Hook/Multiple]")
}

func TestRun_StartupError(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"broken.hcl": `slide "a" {`})

	_, err := run(t, "--deck", dir, "list")
	require.ErrorContains(t, err, "failed to parse slide document broken.hcl")
}
