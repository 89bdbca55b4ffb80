// Package deck assembles slide fragments into the flat, ordered sequence of
// steps a presentation driver walks through.
//
// Each slide document yields one Fragment; Compose concatenates fragments in
// the order given. The composer does not know about navigation. Navigator is
// the small cursor the web and terminal drivers share to move through a Deck.
package deck
