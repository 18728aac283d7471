package content

import (
	_ "embed"
)

//go:embed decks/general.json
var builtinDeck []byte

// Builtin returns the bundled general-medicine deck. It is used when no
// deck file is given on the command line and serves as a smoke deck for
// first runs before any content has been downloaded.
func Builtin() (*Deck, error) {
	return Parse(builtinDeck)
}
