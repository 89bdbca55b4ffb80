// Package content embeds the default slide deck shipped with the binary.
package content

import (
	"embed"
	"io/fs"
)

//go:embed deck/*.hcl
var deckFiles embed.FS

// Deck returns the default slide documents, rooted at the deck directory.
func Deck() fs.FS {
	sub, err := fs.Sub(deckFiles, "deck")
	if err != nil {
		panic(err)
	}
	return sub
}
