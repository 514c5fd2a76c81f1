package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/feudsolver/tilemapping"
)

func TestWordfeudLayout(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(WordfeudLayout())
	is.Equal(b.Dim(), 15)

	r, c := b.StartSquare()
	is.Equal(r, 7)
	is.Equal(c, 7)
	is.True(b.IsStart(7, 7))
	is.Equal(b.WordMultiplier(7, 7), 1)
	is.Equal(b.LetterMultiplier(7, 7), 1)

	// corners and their mirrors
	for _, pos := range [][2]int{{0, 0}, {0, 14}, {14, 0}, {14, 14}} {
		is.Equal(b.LetterMultiplier(pos[0], pos[1]), 3)
	}
	is.Equal(b.WordMultiplier(0, 4), 3)
	is.Equal(b.WordMultiplier(0, 10), 3)
	is.Equal(b.WordMultiplier(14, 4), 3)
	is.Equal(b.WordMultiplier(4, 0), 3)
	is.Equal(b.WordMultiplier(2, 2), 2)
	is.Equal(b.WordMultiplier(12, 12), 2)
	is.Equal(b.LetterMultiplier(7, 0), 2)
	is.Equal(b.LetterMultiplier(7, 14), 2)
	is.Equal(b.WordMultiplier(7, 3), 2)
	is.Equal(b.WordMultiplier(7, 11), 2)
	is.Equal(b.LetterMultiplier(5, 5), 3)
	is.Equal(b.LetterMultiplier(9, 9), 3)
}

func TestCrosswordGameLayout(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(CrosswordGameLayout())
	is.Equal(b.Dim(), 15)
	is.True(b.IsStart(7, 7))
	is.Equal(b.WordMultiplier(7, 7), 2)
	is.Equal(b.WordMultiplier(0, 0), 3)
	is.Equal(b.LetterMultiplier(1, 5), 3)
	is.Equal(b.LetterMultiplier(0, 3), 2)
	is.Equal(b.WordMultiplier(0, 1), 1)
}

func TestLayoutRoundTrip(t *testing.T) {
	is := is.New(t)
	l := WordfeudLayout()
	l2, err := ParseLayout("again", l.Strings())
	is.NoErr(err)
	is.Equal(l.squares, l2.squares)
	is.Equal(l.Strings()[7], "2l -- -- 2w -- -- -- ss -- -- -- 2w -- -- 2l")
}

func TestParseLayoutErrors(t *testing.T) {
	is := is.New(t)
	_, err := ParseLayout("short", []string{"-- --", "--"})
	is.True(errors.Is(err, ErrInvalidDimensions))
	_, err = ParseLayout("bad", []string{"-- 4x", "-- --"})
	is.True(err != nil)
	_, err = ParseLayout("twostarts", []string{"ss --", "-- ss"})
	is.True(err != nil)
	_, err = ParseLayout("none", nil)
	is.True(errors.Is(err, ErrInvalidDimensions))

	l, err := ParseLayout("tiny", []string{"-- -- --", "-- -- --", "-- -- 3w"})
	is.NoErr(err)
	r, c := l.StartSquare()
	is.Equal(r, 1)
	is.Equal(c, 1)

	_, err = NamedLayout("hexagonal")
	is.True(err != nil)
}

func TestSetFromStrings(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	b := MakeBoard(WordfeudLayout())
	is.True(b.IsEmpty())

	played, err := b.SetFromStrings(VsBlanks, tm)
	is.NoErr(err)
	is.Equal(len(played), 6)
	is.Equal(b.TilesPlayed(), 6)
	is.True(!b.IsEmpty())
	is.True(b.HasLetter(0, 0))
	is.True(!b.HasLetter(1, 0))
	is.True(!b.HasLetter(-1, 0))
	is.True(!b.HasLetter(0, 15))
	is.True(b.GetLetter(7, 8).IsBlank())
	is.Equal(b.GetLetter(7, 8).Label(), uint8(5))
	is.Equal([]string(VsBlanks), b.ToStrings(tm))

	// Setting again replaces the old tiles.
	_, err = b.SetFromStrings(VsHulpen, tm)
	is.NoErr(err)
	is.Equal(b.TilesPlayed(), 6)
	is.True(!b.HasLetter(0, 0))
}

func TestSetFromStringsErrors(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	b := MakeBoard(WordfeudLayout())

	_, err := b.SetFromStrings(VsHulpen[:14], tm)
	is.True(errors.Is(err, ErrInvalidDimensions))

	rows := append([]string{}, VsHulpen...)
	rows[3] = "..."
	_, err = b.SetFromStrings(rows, tm)
	is.True(errors.Is(err, ErrInvalidDimensions))

	rows[3] = "......!........"
	_, err = b.SetFromStrings(rows, tm)
	is.True(errors.Is(err, tilemapping.ErrInvalidSymbol))

	rows[3] = "......*........"
	_, err = b.SetFromStrings(rows, tm)
	is.True(errors.Is(err, tilemapping.ErrInvalidTile))

	// A failed set leaves the board alone.
	is.True(b.IsEmpty())
}

func TestPlayWord(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	b := MakeBoard(WordfeudLayout())
	_, err := b.SetFromStrings(VsHulpen, tm)
	is.NoErr(err)

	punch, err := tilemapping.ToTiles("punch", tm)
	is.NoErr(err)
	used, err := b.PlayWord(punch, 6, 8, VerticalDirection)
	is.NoErr(err)
	is.Equal(used.UserVisible(tm), "pnch")

	expected := MakeBoard(WordfeudLayout())
	_, err = expected.SetFromStrings(VsPunch, tm)
	is.NoErr(err)
	is.True(b.Equals(expected))
}

func TestPlayWordErrors(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	b := MakeBoard(WordfeudLayout())
	_, err := b.SetFromStrings(VsHulpen, tm)
	is.NoErr(err)
	before := b.Copy()

	w, err := tilemapping.ToTiles("punch", tm)
	is.NoErr(err)
	_, err = b.PlayWord(w, 11, 8, VerticalDirection)
	is.True(errors.Is(err, ErrPlacementOutOfBounds))
	_, err = b.PlayWord(w, 0, -1, HorizontalDirection)
	is.True(errors.Is(err, ErrPlacementOutOfBounds))

	// p would go on the h of hulpen.
	_, err = b.PlayWord(w, 7, 7, VerticalDirection)
	is.True(errors.Is(err, ErrTileReplace))

	// A blank u is not the u on the board.
	w2, err := tilemapping.ToTiles("pUnch", tm)
	is.NoErr(err)
	_, err = b.PlayWord(w2, 6, 8, VerticalDirection)
	is.True(errors.Is(err, ErrTileReplace))

	is.True(b.Equals(before))
}

func TestRowView(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	b := MakeBoard(WordfeudLayout())
	_, err := b.SetFromStrings(VsPunch, tm)
	is.NoErr(err)

	r := b.Row(7, HorizontalDirection)
	is.Equal(r.Len(), 15)
	is.Equal(r.Tiles().UserVisible(tm), ".......hulpen..")
	row, col := r.Coords(3)
	is.Equal(row, 7)
	is.Equal(col, 3)
	is.Equal(r.WordMultiplier(3), 2)
	is.True(r.IsStart(7))

	c := b.Row(8, VerticalDirection)
	is.Equal(c.Tiles().UserVisible(tm), "......punch....")
	row, col = c.Coords(3)
	is.Equal(row, 3)
	is.Equal(col, 8)
	is.True(c.HasLetter(10))
	is.True(!c.HasLetter(11))
	is.True(!c.HasLetter(15))

	x := c.Cross(7)
	is.Equal(x.Direction(), HorizontalDirection)
	is.Equal(x.Index(), 7)
	is.Equal(x.Letter(8), c.Letter(7))

	assert.Len(t, b.Rows(), 30)
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	b := MakeBoard(WordfeudLayout())
	_, err := b.SetFromStrings(VsHulpen, tm)
	is.NoErr(err)
	txt := b.ToDisplayText(tm)
	is.True(strings.Contains(txt, " 8|' . . - . . . h u l p e n . ' |"))
	is.True(strings.Contains(txt, " 1|\" . . . = . . ' . . = . . . \" |"))
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	b := MakeBoard(WordfeudLayout())
	_, err := b.SetFromStrings(VsHulpen, tm)
	is.NoErr(err)
	cp := b.Copy()
	cp.SetLetter(0, 0, tilemapping.FromLabel(1))
	is.True(!b.HasLetter(0, 0))
	is.Equal(cp.TilesPlayed(), 7)

	cp.SetLetter(0, 0, tilemapping.EmptySquare)
	is.True(cp.Equals(b))

	other := MakeBoard(WordfeudLayout())
	other.CopyFrom(b)
	is.True(other.Equals(b))
}

func TestReadLayout(t *testing.T) {
	is := is.New(t)
	text := "# a tiny board\n3w -- 2l\n-- ss --\n\n2l -- 3w\n"
	l, err := ReadLayout("tiny", strings.NewReader(text))
	is.NoErr(err)
	is.Equal(l.Dim(), 3)
	is.Equal(l.Name(), "tiny")
	r, c := l.StartSquare()
	is.Equal(r, 1)
	is.Equal(c, 1)

	b := MakeBoard(l)
	is.Equal(b.WordMultiplier(0, 0), 3)
	is.Equal(b.LetterMultiplier(2, 0), 2)
}

func TestSetFromReader(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	b := MakeBoard(WordfeudLayout())
	text := "# after punch\r\n" + strings.Join(VsPunch, "\r\n") + "\r\n"
	played, err := b.SetFromReader(strings.NewReader(text), tm)
	is.NoErr(err)
	is.Equal(len(played), 10)
	is.Equal(b.ToStrings(tm), []string(VsPunch))
}
