package cross_set

import (
	"github.com/domino14/feudsolver/board"
	"github.com/domino14/feudsolver/tilemapping"
	"github.com/domino14/feudsolver/trie"
)

// RowData holds, for every position of one row, what the move generator
// needs to know about the perpendicular direction. It is computed from the
// board as it is and is never patched; generate it again after the board
// changes.
//
// A cross set is inherently directional. For a horizontal row it is built
// from the tiles above and below each square, and lists the letters that
// make a valid vertical word there.
type RowData struct {
	// CrossSets[p] is the set of labels that may be placed at p. It is
	// empty for squares that already hold a tile.
	CrossSets []tilemapping.LetterSet
	// Connected[p] is true if p holds a tile, touches a tile, or is the
	// start square of an empty board.
	Connected []bool
	// CrossScores[p] is the face value of the perpendicular tiles that a
	// tile placed at p would join.
	CrossScores []int
	// Hooks[p] is true if a tile placed at p forms a perpendicular word.
	Hooks []bool
}

// Len returns the number of positions.
func (rd *RowData) Len() int {
	return len(rd.CrossSets)
}

// AnyConnected returns true if a move along this row is possible at all.
func (rd *RowData) AnyConnected() bool {
	for _, c := range rd.Connected {
		if c {
			return true
		}
	}
	return false
}

// A Generator computes row data from a dictionary. Cache is optional.
type Generator struct {
	Trie  *trie.Trie
	Dist  *tilemapping.LetterDistribution
	Cache *Cache
}

// Perpendicular returns the tiles directly before and after position idx
// in line x, up to the first empty square in each direction.
func Perpendicular(x board.Row, idx int) (tilemapping.Word, tilemapping.Word) {
	start := idx
	for x.HasLetter(start - 1) {
		start--
	}
	end := idx
	for x.HasLetter(end + 1) {
		end++
	}
	var prefix, suffix tilemapping.Word
	for i := start; i < idx; i++ {
		prefix = append(prefix, x.Letter(i))
	}
	for i := idx + 1; i <= end; i++ {
		suffix = append(suffix, x.Letter(i))
	}
	return prefix, suffix
}

// Generate computes the row data for r.
func (g *Generator) Generate(r board.Row) *RowData {
	n := r.Len()
	rd := &RowData{
		CrossSets:   make([]tilemapping.LetterSet, n),
		Connected:   make([]bool, n),
		CrossScores: make([]int, n),
		Hooks:       make([]bool, n),
	}
	emptyBoard := r.Board().IsEmpty()
	allLetters := g.Trie.AllLetters()

	for p := 0; p < n; p++ {
		if r.HasLetter(p) {
			rd.Connected[p] = true
			continue
		}
		prefix, suffix := Perpendicular(r.Cross(p), r.Index())
		rd.Connected[p] = r.HasLetter(p-1) || r.HasLetter(p+1) ||
			len(prefix) > 0 || len(suffix) > 0 ||
			(emptyBoard && r.IsStart(p))

		if len(prefix) == 0 && len(suffix) == 0 {
			rd.CrossSets[p] = allLetters
			continue
		}
		rd.Hooks[p] = true
		if g.Dist != nil {
			rd.CrossScores[p] = g.Dist.WordScore(prefix) + g.Dist.WordScore(suffix)
		}
		if g.Cache != nil {
			rd.CrossSets[p] = g.Cache.Lookup(prefix, suffix, g.Trie.CrossLetters)
		} else {
			rd.CrossSets[p] = g.Trie.CrossLetters(prefix, suffix)
		}
	}
	return rd
}

// GenerateAll computes the row data for every row and then every column of
// the board, in the order of board.GameBoard.Rows.
func (g *Generator) GenerateAll(b *board.GameBoard) []*RowData {
	rows := b.Rows()
	rds := make([]*RowData, len(rows))
	for i, r := range rows {
		rds[i] = g.Generate(r)
	}
	return rds
}
