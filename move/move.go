package move

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/domino14/feudsolver/tilemapping"
)

// Move is a scored placement of tiles along one row or column. The tiles
// are the whole word, including the tiles it plays through; placed marks
// the ones that are new.
type Move struct {
	score       int
	coords      string
	tiles       tilemapping.Word
	placed      []bool
	rowStart    int
	colStart    int
	vertical    bool
	bingo       bool
	tilesPlayed int
	alph        *tilemapping.TileMapping
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// NewScoringMove creates a scoring *Move and returns it. placed must be as
// long as tiles. The move keeps both slices.
func NewScoringMove(score int, tiles tilemapping.Word, placed []bool, vertical bool,
	bingo bool, alph *tilemapping.TileMapping, rowStart int, colStart int) *Move {

	tilesPlayed := 0
	for _, p := range placed {
		if p {
			tilesPlayed++
		}
	}
	return &Move{
		score: score, tiles: tiles, placed: placed, vertical: vertical,
		bingo: bingo, tilesPlayed: tilesPlayed, alph: alph,
		rowStart: rowStart, colStart: colStart,
		coords: ToBoardGameCoords(rowStart, colStart, vertical),
	}
}

// NewScoringMoveSimple takes in user-visible strings. Played-through
// letters are written in parentheses, e.g. "p(u)nch". It is mostly useful
// for tests.
func NewScoringMoveSimple(score int, coords string, word string,
	alph *tilemapping.TileMapping) (*Move, error) {

	row, col, vertical, err := ParseBoardGameCoords(coords)
	if err != nil {
		return nil, err
	}
	var tiles tilemapping.Word
	var placed []bool
	through := false
	for _, r := range word {
		switch r {
		case '(':
			through = true
			continue
		case ')':
			through = false
			continue
		}
		t, err := alph.Encode(r)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
		placed = append(placed, !through)
	}
	return NewScoringMove(score, tiles, placed, vertical, false, alph, row, col), nil
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%p word: %v %v score: %v tp: %v bingo: %v>",
		m, m.coords, m.TilesString(), m.score, m.tilesPlayed, m.bingo)
}

// TilesString shows the word, with the letters that were already on the
// board in parentheses.
func (m *Move) TilesString() string {
	var sb strings.Builder
	through := false
	for i, t := range m.tiles {
		if !m.placed[i] && !through {
			sb.WriteRune('(')
			through = true
		} else if m.placed[i] && through {
			sb.WriteRune(')')
			through = false
		}
		sb.WriteRune(m.alph.Letter(t))
	}
	if through {
		sb.WriteRune(')')
	}
	return sb.String()
}

// Word returns the user-visible word this move makes.
func (m *Move) Word() string {
	return m.tiles.UserVisible(m.alph)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	return fmt.Sprintf("%v %v", m.coords, m.TilesString())
}

// Alphabet is the alphabet used by this move
func (m *Move) Alphabet() *tilemapping.TileMapping {
	return m.alph
}

func (m *Move) Score() int {
	return m.score
}

// TilesPlayed returns the number of tiles played by this move.
func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

// Bingo is true if the move earned the bonus for playing a full rack.
func (m *Move) Bingo() bool {
	return m.bingo
}

// Tiles returns the whole word.
func (m *Move) Tiles() tilemapping.Word {
	return m.tiles
}

// Placed reports, per tile, whether the move puts it on the board.
func (m *Move) Placed() []bool {
	return m.placed
}

// PlacedTiles returns the tiles this move takes from the rack, in board
// order.
func (m *Move) PlacedTiles() tilemapping.Word {
	w := make(tilemapping.Word, 0, m.tilesPlayed)
	for i, t := range m.tiles {
		if m.placed[i] {
			w = append(w, t)
		}
	}
	return w
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.vertical
}

func (m *Move) BoardCoords() string {
	return m.coords
}

// Equals checks the moves for equality: same placement, same tiles, same
// score.
func (m *Move) Equals(o *Move) bool {
	if m.score != o.score || m.rowStart != o.rowStart || m.colStart != o.colStart ||
		m.vertical != o.vertical || len(m.tiles) != len(o.tiles) {
		return false
	}
	for i := range m.tiles {
		if m.tiles[i] != o.tiles[i] || m.placed[i] != o.placed[i] {
			return false
		}
	}
	return true
}

// Compare orders moves best first: higher score, then horizontal before
// vertical, then lower row, then lower column, then lower tile codes. It
// returns a negative number if a comes before b, and 0 only for equal moves.
func Compare(a, b *Move) int {
	switch {
	case a.score != b.score:
		return b.score - a.score
	case a.vertical != b.vertical:
		if a.vertical {
			return 1
		}
		return -1
	case a.rowStart != b.rowStart:
		return a.rowStart - b.rowStart
	case a.colStart != b.colStart:
		return a.colStart - b.colStart
	}
	for i := 0; i < len(a.tiles) && i < len(b.tiles); i++ {
		if a.tiles[i] != b.tiles[i] {
			return int(a.tiles[i]) - int(b.tiles[i])
		}
	}
	return len(a.tiles) - len(b.tiles)
}

// ToBoardGameCoords onverts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(int(row + 1))
	var coords string
	if vertical {
		coords = colCoords + rowCoords
	} else {
		coords = rowCoords + colCoords
	}
	return coords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (int, int, bool) {
	row, col, vertical, _ := ParseBoardGameCoords(c)
	return row, col, vertical
}

// ParseBoardGameCoords is FromBoardGameCoords with an error for malformed
// coordinates.
func ParseBoardGameCoords(c string) (int, int, bool, error) {
	vMatches := reVertical.FindStringSubmatch(c)
	if len(vMatches) == 3 {
		// It's vertical
		row, _ := strconv.Atoi(vMatches[2])
		col := int(vMatches[1][0] - 'A')
		return row - 1, col, true, nil
	}
	hMatches := reHorizontal.FindStringSubmatch(c)
	if len(hMatches) == 3 {
		row, _ := strconv.Atoi(hMatches[1])
		col := int(hMatches[2][0] - 'A')
		return row - 1, col, false, nil
	}
	return 0, 0, false, fmt.Errorf("malformed coordinates %q", c)
}
