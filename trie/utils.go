package trie

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/feudsolver/tilemapping"
)

// FindWord finds a user-visible word in the trie.
func FindWord(t *Trie, word string) bool {
	w, err := tilemapping.ToTiles(word, t.Alphabet())
	if err != nil {
		log.Err(err).Msg("convert-to-word")
		return false
	}
	return t.IsWord(w)
}

// LegalLetters returns the labels that can fill the single gap of pattern
// to make a word. The gap is an empty square.
func (t *Trie) LegalLetters(pattern tilemapping.Word) (tilemapping.LetterSet, error) {
	gap := -1
	for i, tile := range pattern {
		if tile != tilemapping.EmptySquare {
			continue
		}
		if gap != -1 {
			return 0, fmt.Errorf("pattern %q has more than one gap",
				pattern.UserVisible(t.alphabet))
		}
		gap = i
	}
	if gap == -1 {
		return 0, fmt.Errorf("pattern %q has no gap", pattern.UserVisible(t.alphabet))
	}
	return t.CrossLetters(pattern[:gap], pattern[gap+1:]), nil
}
