package fsutil

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension_NaturalOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"10-closing.hcl":       {Data: []byte("")},
		"2-state.hcl":          {Data: []byte("")},
		"1-intro.hcl":          {Data: []byte("")},
		"notes.txt":            {Data: []byte("")},
		"extra/1-appendix.hcl": {Data: []byte("")},
	}

	files, err := FindFilesByExtension(fsys, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{"1-intro.hcl", "2-state.hcl", "10-closing.hcl", "extra/1-appendix.hcl"}, files)
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	require.Panics(t, func() {
		_, _ = FindFilesByExtension(fstest.MapFS{}, "")
	})
}
