package movegen

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/feudsolver/board"
	"github.com/domino14/feudsolver/testhelpers"
	"github.com/domino14/feudsolver/tilemapping"
)

func scorerFor(dist string) (*Scorer, *tilemapping.TileMapping) {
	ld := testhelpers.Distribution(dist)
	return NewScorer(testhelpers.DefaultConfig, ld), ld.TileMapping()
}

func tilesOf(t *testing.T, s string, tm *tilemapping.TileMapping) tilemapping.Word {
	w, err := tilemapping.ToTiles(s, tm)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

type scoreTestCase struct {
	dist  string
	rows  board.VsWho
	word  string
	row   int
	col   int
	dir   board.BoardDirection
	score int
}

func TestScore(t *testing.T) {
	cases := []scoreTestCase{
		// 2w on the f, 2l on the last d, and the bingo.
		{"english", board.EmptyWordfeud, "wordfeud", 7, 7, board.HorizontalDirection, 78},
		{"dutch", board.EmptyWordfeud, "hoentje", 7, 7, board.HorizontalDirection, 68},
		{"dutch", board.EmptyWordfeud, "hulpen", 7, 2, board.HorizontalDirection, 30},
		{"dutch", board.EmptyWordfeud, "hulpen", 2, 7, board.VerticalDirection, 30},
		{"dutch", board.EmptyWordfeud, "hulpen", 7, 4, board.HorizontalDirection, 15},
		// The blank is worth nothing but still doubles the rest.
		{"dutch", board.EmptyWordfeud, "hulPen", 7, 2, board.HorizontalDirection, 22},
		// Played through u; the 2l is under the h.
		{"dutch", board.VsHulpen, "punch", 6, 8, board.VerticalDirection, 20},
		// Both new tiles make a word with the tile above them.
		{"dutch", board.VsHulpen, "nu", 8, 7, board.HorizontalDirection, 12},
		// The e sits on a 2w that hulpen already used.
		{"dutch", board.VsHulpen, "pen", 6, 11, board.VerticalDirection, 6},
	}
	for _, tc := range cases {
		s, tm := scorerFor(tc.dist)
		b := testhelpers.WordfeudBoard(tc.rows, tm)
		score, err := s.Score(b, tilesOf(t, tc.word, tm), tc.row, tc.col, tc.dir)
		if err != nil {
			t.Fatal(err)
		}
		if score != tc.score {
			t.Errorf("%v at %d,%d %v: expected %d, got %d", tc.word, tc.row, tc.col, tc.dir, tc.score, score)
		}
	}
}

func TestScoreErrors(t *testing.T) {
	is := is.New(t)
	s, tm := scorerFor("dutch")
	b := testhelpers.WordfeudBoard(board.VsHulpen, tm)

	_, err := s.Score(b, tilesOf(t, "pench", tm), 6, 8, board.VerticalDirection)
	is.True(errors.Is(err, board.ErrTileReplace))
	_, err = s.Score(b, tilesOf(t, "hulpen", tm), 7, 10, board.HorizontalDirection)
	is.True(errors.Is(err, board.ErrPlacementOutOfBounds))
	_, err = s.Score(b, tilesOf(t, "hulpen", tm), -1, 0, board.VerticalDirection)
	is.True(errors.Is(err, board.ErrPlacementOutOfBounds))
	_, err = s.Score(b, tilemapping.Word{tilemapping.Blank, tilemapping.FromLabel(1)}, 0, 0, board.HorizontalDirection)
	is.True(errors.Is(err, tilemapping.ErrInvalidTile))
}

func TestScoreBingoSettings(t *testing.T) {
	is := is.New(t)
	s, tm := scorerFor("dutch")
	b := testhelpers.WordfeudBoard(board.EmptyWordfeud, tm)
	s.BingoBonus = 50
	score, err := s.Score(b, tilesOf(t, "hoentje", tm), 7, 7, board.HorizontalDirection)
	is.NoErr(err)
	is.Equal(score, 78)

	s.BingoTiles = 8
	score, err = s.Score(b, tilesOf(t, "hoentje", tm), 7, 7, board.HorizontalDirection)
	is.NoErr(err)
	is.Equal(score, 28)
	is.True(!s.IsBingo(7))
	is.True(s.IsBingo(8))
}

// Scoring a found word from its row data agrees with scoring it from the
// board.
func TestScoreMatchAgrees(t *testing.T) {
	is := is.New(t)
	gen := testGenerator(t, "dutch", dutchWords)
	tm := gen.Trie().Alphabet()
	b := testhelpers.WordfeudBoard(board.VsPunch, tm)
	rack, err := tilemapping.RackFromString("nuet*", tm)
	is.NoErr(err)

	moves, err := gen.GenAll(t.Context(), b, rack)
	is.NoErr(err)
	is.True(len(moves) > 0)
	for _, m := range moves {
		row, col, vertical := m.CoordsAndVertical()
		dir := board.HorizontalDirection
		if vertical {
			dir = board.VerticalDirection
		}
		score, err := gen.Scorer().Score(b, m.Tiles(), row, col, dir)
		is.NoErr(err)
		is.Equal(score, m.Score())
	}
}
