package movegen

import (
	"math/bits"
	"slices"

	"github.com/domino14/feudsolver/cross_set"
	"github.com/domino14/feudsolver/tilemapping"
	"github.com/domino14/feudsolver/trie"
)

// MatchFunc receives a word found by the matcher. The word is
// strip[start:end]; placed[i] is true for the squares the word fills from
// the rack. Both slices are reused, copy them to keep them.
type MatchFunc func(start, end int, strip tilemapping.Word, placed []bool)

// StartIndices returns, in ascending order, the positions of row from which
// a word placing at most maxTiles tiles can reach a connected square. A
// word never starts directly after a tile, since it would really start
// earlier.
func StartIndices(row tilemapping.Word, rd *cross_set.RowData, maxTiles int) []int {
	if maxTiles <= 0 {
		return nil
	}
	n := len(row)
	// need is the number of tiles a word starting at p must place before
	// it touches something. Anything above n is unreachable.
	need := n + 1
	var starts []int
	for p := n - 1; p >= 0; p-- {
		switch {
		case row[p] != tilemapping.EmptySquare:
			need = 0
		case rd.Connected[p]:
			need = 1
		case need <= n:
			need++
		}
		if need <= maxTiles && (p == 0 || row[p-1] == tilemapping.EmptySquare) {
			starts = append(starts, p)
		}
	}
	slices.Reverse(starts)
	return starts
}

type matcher struct {
	trie   *trie.Trie
	row    tilemapping.Word
	rd     *cross_set.RowData
	rack   *tilemapping.Rack
	strip  tilemapping.Word
	placed []bool
	start  int
	emit   MatchFunc
}

func newMatcher(t *trie.Trie, row tilemapping.Word, rd *cross_set.RowData,
	rack *tilemapping.Rack, emit MatchFunc) *matcher {

	if rd.Len() != len(row) {
		panic("movegen: row data does not fit the row")
	}
	return &matcher{
		trie:   t,
		row:    row,
		rd:     rd,
		rack:   rack,
		strip:  make(tilemapping.Word, len(row)),
		placed: make([]bool, len(row)),
		emit:   emit,
	}
}

func (m *matcher) run(start int) {
	m.start = start
	m.extend(start, m.trie.RootNodeIndex(), false, false)
}

// Matches calls emit for every word starting at start that can be made on
// row with the tiles of rack. Every word fits the cross sets of rd, places
// at least one tile, touches a connected square, and is at least two
// letters long. The rack is borrowed and left as it was found.
func Matches(t *trie.Trie, row tilemapping.Word, rd *cross_set.RowData, start int,
	rack *tilemapping.Rack, emit MatchFunc) {

	newMatcher(t, row, rd, rack, emit).run(start)
}

// extend is at position pos having followed the trie to node. connecting
// is true once the word touches a connected square, extending once it has
// placed a tile.
func (m *matcher) extend(pos int, node uint32, connecting, extending bool) {
	if pos < len(m.row) && m.row[pos] != tilemapping.EmptySquare {
		t := m.row[pos]
		next := m.trie.NextNodeIdx(node, t)
		if next == 0 {
			return
		}
		m.strip[pos] = t
		m.placed[pos] = false
		m.extend(pos+1, next, true, extending)
		return
	}

	// An empty square or the edge of the board: the word may end here.
	if connecting && extending && pos-m.start > 1 && m.trie.IsTerminal(node) {
		m.emit(m.start, pos, m.strip, m.placed)
	}
	if pos >= len(m.row) || m.rack.Empty() {
		return
	}

	connecting = connecting || m.rd.Connected[pos]
	possible := m.trie.Children(node) & m.rd.CrossSets[pos]
	for v := uint32(possible); v != 0; v &= v - 1 {
		t := tilemapping.FromLabel(uint8(bits.TrailingZeros32(v)))
		next := m.trie.NextNodeIdx(node, t)
		if m.rack.CountOf(t) > 0 {
			m.place(pos, t, next, connecting)
		}
		if m.rack.CountOf(tilemapping.Blank) > 0 {
			m.place(pos, t.Blank(), next, connecting)
		}
	}
}

func (m *matcher) place(pos int, t tilemapping.Tile, next uint32, connecting bool) {
	if err := m.rack.TakeExact(t); err != nil {
		return
	}
	m.strip[pos] = t
	m.placed[pos] = true
	m.extend(pos+1, next, connecting, true)
	m.rack.Add(t)
}
