package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestEncodeDecode(t *testing.T) {
	is := is.New(t)
	tm := EnglishAlphabet()

	a, err := tm.Encode('a')
	is.NoErr(err)
	is.Equal(a, Tile(0x21))
	is.Equal(a.Label(), uint8(1))
	is.True(a.IsLetter())
	is.True(!a.IsBlank())

	z, err := tm.Encode('Z')
	is.NoErr(err)
	is.Equal(z, Tile(0x20|0x40|26))
	is.True(z.IsLetter())
	is.True(z.IsBlank())
	is.Equal(z.Unblank(), Tile(0x20|26))

	b, err := tm.Encode('*')
	is.NoErr(err)
	is.Equal(b, Blank)
	is.True(!b.IsLetter())

	e, err := tm.Encode('.')
	is.NoErr(err)
	is.Equal(e, EmptySquare)
	e, err = tm.Encode(' ')
	is.NoErr(err)
	is.Equal(e, EmptySquare)

	_, err = tm.Encode('!')
	is.True(errors.Is(err, ErrInvalidSymbol))
}

func TestDecodeInvalid(t *testing.T) {
	is := is.New(t)
	tm := EnglishAlphabet()

	_, err := tm.Decode(EmptySquare)
	is.True(errors.Is(err, ErrInvalidTile))
	_, err = tm.Decode(Tile(5))
	is.True(errors.Is(err, ErrInvalidTile))
	_, err = tm.Decode(FromLabel(27))
	is.True(errors.Is(err, ErrInvalidTile))
	_, err = tm.Decode(Tile(LetterBit))
	is.True(errors.Is(err, ErrInvalidTile))
}

func TestRoundTrip(t *testing.T) {
	is := is.New(t)
	tm := EnglishAlphabet()
	for _, r := range "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ*" {
		tile, err := tm.Encode(r)
		is.NoErr(err)
		back, err := tm.Decode(tile)
		is.NoErr(err)
		is.Equal(back, r)
	}
}

func TestToTilesNormalizes(t *testing.T) {
	is := is.New(t)
	ld, err := NamedLetterDistribution(nil, "swedish")
	is.NoErr(err)
	tm := ld.TileMapping()

	// "å" as a + combining ring above.
	decomposed := "ga\u030ar"
	composed := "g\u00e5r"
	w1, err := ToTiles(decomposed, tm)
	is.NoErr(err)
	w2, err := ToTiles(composed, tm)
	is.NoErr(err)
	is.Equal(w1, w2)
	is.Equal(len(w1), 3)
	is.Equal(w1[1].Label(), uint8(27))
	is.Equal(w1.UserVisible(tm), "går")

	w3, err := ToTiles("GÅr", tm)
	is.NoErr(err)
	is.True(w3[1].IsBlank())
	is.Equal(w3.UserVisible(tm), "GÅr")
}

func TestTooManyLetters(t *testing.T) {
	is := is.New(t)
	_, err := NewTileMapping("big", []rune("abcdefghijklmnopqrstuvwxyzåäöüéß"))
	is.True(err != nil)
	_, err = NewTileMapping("dup", []rune("abca"))
	is.True(err != nil)
}

func TestLetterSet(t *testing.T) {
	is := is.New(t)
	var ls LetterSet
	is.Equal(ls.Len(), 0)
	ls.Add(1)
	ls.Add(5)
	ls.Add(31)
	is.Equal(ls.Len(), 3)
	is.True(ls.Contains(5))
	is.True(!ls.Contains(4))
	is.True(ls.Allowed(FromLabel(5).Blank()))
	is.Equal(ls.Labels(), []uint8{1, 5, 31})

	idx, ok := ls.IndexOf(31)
	is.True(ok)
	is.Equal(idx, 2)
	_, ok = ls.IndexOf(2)
	is.True(!ok)

	is.Equal(EnglishAlphabet().AllLetters().Len(), 26)
	is.Equal(ls.UserVisible(EnglishAlphabet())[:2], "ae")
}

func TestTileMappingEqual(t *testing.T) {
	is := is.New(t)
	en := EnglishAlphabet()
	is.True(en.Equal(EnglishAlphabet()))
	sv, err := NamedLetterDistribution(nil, "swedish")
	is.NoErr(err)
	is.True(!en.Equal(sv.TileMapping()))
	nl, err := NamedLetterDistribution(nil, "dutch")
	is.NoErr(err)
	is.True(en.Equal(nl.TileMapping()))
}
