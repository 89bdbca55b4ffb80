package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// A slide that references an example nobody registered.
	slides := `
slide "ghost" {
  example {
    group = "State Hook"
    name  = "Ghost"
  }
}
`
	tempDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tempDir, "main.hcl"), []byte(slides), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	runErr := run(context.Background(), []string{"nutshell", "--deck", tempDir, "list"}, strings.NewReader(""), out, &bytes.Buffer{})

	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), `references unknown example "Ghost"`)
	require.Empty(t, out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), []string{"nutshell", "-h"}, strings.NewReader(""), out, &bytes.Buffer{})

	require.NoError(t, err)
	require.Contains(t, out.String(), "USAGE:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), []string{"nutshell", "--this-is-not-a-valid-flag"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
