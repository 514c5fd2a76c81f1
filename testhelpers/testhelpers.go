// Package testhelpers holds setup shared by the tests of several packages.
package testhelpers

import (
	"github.com/domino14/feudsolver/board"
	"github.com/domino14/feudsolver/config"
	"github.com/domino14/feudsolver/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

// Distribution returns a built-in letter distribution, or panics.
func Distribution(name string) *tilemapping.LetterDistribution {
	ld, err := tilemapping.NamedLetterDistribution(DefaultConfig, name)
	if err != nil {
		panic(err)
	}
	return ld
}

func EnglishAlphabet() *tilemapping.TileMapping {
	return Distribution("english").TileMapping()
}

// WordfeudBoard returns a Wordfeud board holding the given tiles, or panics.
func WordfeudBoard(rows board.VsWho, tm *tilemapping.TileMapping) *board.GameBoard {
	b := board.MakeBoard(board.WordfeudLayout())
	if _, err := b.SetFromStrings(rows, tm); err != nil {
		panic(err)
	}
	return b
}
