package tilemapping

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// A tile is internally represented by a byte.
//   - 0 is the empty square.
//   - bits 0-4 hold the label of a letter, from 1 to MaxAlphabetSize. Label 0
//     is never a letter; the rack uses that slot for blanks.
//   - LetterBit is set for every tile that reads as a letter.
//   - BlankBit is set for blanks. A blank on a rack has only the BlankBit set;
//     once it is placed on the board it also carries the letter it stands for.
const (
	// MaxAlphabetSize is the number of distinct letters a tile can encode, so
	// that a LetterSet fits in 32 bits.
	MaxAlphabetSize = 31

	LabelMask = 0x1f
	LetterBit = 0x20
	BlankBit  = 0x40

	// EmptySquare is the tile code of an empty square.
	EmptySquare Tile = 0
	// Blank is an unassigned blank tile.
	Blank Tile = BlankBit
)

const (
	// BlankToken is the user-visible representation of an unassigned blank.
	BlankToken = '*'
	// EmptyToken is the user-visible representation of an empty square.
	EmptyToken = '.'
)

var (
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrInvalidTile      = errors.New("invalid tile")
	ErrNotAvailable     = errors.New("tile not available")
	ErrAlphabetMismatch = errors.New("alphabet mismatch")
)

// Tile is a machine-only representation of a tile or a square's contents.
type Tile uint8

// Word is a sequence of tiles.
type Word []Tile

// LetterSet is a bit mask of acceptable labels.
type LetterSet uint32

// FromLabel returns the letter tile with the given label.
func FromLabel(label uint8) Tile {
	return Tile(label&LabelMask) | LetterBit
}

// Label returns the letter label of the tile, from 1 to MaxAlphabetSize, or
// 0 for an empty square or an unassigned blank.
func (t Tile) Label() uint8 {
	return uint8(t) & LabelMask
}

// IsLetter returns true if this tile reads as a letter (a regular letter or
// a designated blank).
func (t Tile) IsLetter() bool {
	return t&LetterBit != 0
}

// IsBlank returns true for blanks, designated or not.
func (t Tile) IsBlank() bool {
	return t&BlankBit != 0
}

// Blank turns the letter into its designated-blank version.
func (t Tile) Blank() Tile {
	return t | BlankBit
}

// Unblank strips the blank flag, turning a designated blank into the letter
// it stands for.
func (t Tile) Unblank() Tile {
	return t &^ BlankBit
}

// Contains returns true if the label is in the set.
func (c LetterSet) Contains(label uint8) bool {
	return c&(1<<label) != 0
}

// Allowed returns true if the letter of tile t is in the set.
func (c LetterSet) Allowed(t Tile) bool {
	return c.Contains(t.Label())
}

// Add puts the label into the set.
func (c *LetterSet) Add(label uint8) {
	*c |= 1 << label
}

// Len returns the number of labels in the set.
func (c LetterSet) Len() int {
	return bits.OnesCount32(uint32(c))
}

// IndexOf returns the rank of label among the labels of the set, and false
// if label is not in the set.
func (c LetterSet) IndexOf(label uint8) (int, bool) {
	if !c.Contains(label) {
		return 0, false
	}
	return bits.OnesCount32(uint32(c) & (1<<label - 1)), true
}

// Labels returns the labels in the set in ascending order.
func (c LetterSet) Labels() []uint8 {
	labels := make([]uint8, 0, c.Len())
	for v := uint32(c); v != 0; v &= v - 1 {
		labels = append(labels, uint8(bits.TrailingZeros32(v)))
	}
	return labels
}

// A TileMapping maps user-visible runes to tiles and back. Lower-case
// letters are regular tiles, upper-case letters are designated blanks.
type TileMapping struct {
	name    string
	letters []rune
	vals    map[rune]Tile
}

// NewTileMapping creates a tile mapping for the given letters. The letters
// are labeled in order, starting at 1.
func NewTileMapping(name string, letters []rune) (*TileMapping, error) {
	if len(letters) > MaxAlphabetSize {
		return nil, fmt.Errorf("alphabet %v has %d letters, maximum is %d",
			name, len(letters), MaxAlphabetSize)
	}
	tm := &TileMapping{
		name:    name,
		letters: make([]rune, len(letters)+1),
		vals:    make(map[rune]Tile),
	}
	for idx, r := range letters {
		r = unicode.ToLower(r)
		if _, ok := tm.vals[r]; ok {
			return nil, fmt.Errorf("letter %c repeated in alphabet %v", r, name)
		}
		t := FromLabel(uint8(idx + 1))
		tm.letters[idx+1] = r
		tm.vals[r] = t
	}
	return tm, nil
}

// EnglishAlphabet returns the a-z tile mapping. It is mostly useful for
// tests; distributions carry their own mapping.
func EnglishAlphabet() *TileMapping {
	tm, err := NewTileMapping("english", []rune("abcdefghijklmnopqrstuvwxyz"))
	if err != nil {
		panic(err)
	}
	return tm
}

// Name returns the name of this alphabet.
func (tm *TileMapping) Name() string {
	return tm.name
}

// NumLetters returns the number of letters in this alphabet.
func (tm *TileMapping) NumLetters() int {
	return len(tm.letters) - 1
}

// AllLetters returns a LetterSet with every letter of the alphabet.
func (tm *TileMapping) AllLetters() LetterSet {
	var ls LetterSet
	for i := 1; i < len(tm.letters); i++ {
		ls.Add(uint8(i))
	}
	return ls
}

// Equal returns true if both mappings map the same runes to the same tiles.
func (tm *TileMapping) Equal(other *TileMapping) bool {
	if tm == other {
		return true
	}
	if tm == nil || other == nil || len(tm.letters) != len(other.letters) {
		return false
	}
	for i := range tm.letters {
		if tm.letters[i] != other.letters[i] {
			return false
		}
	}
	return true
}

// Encode returns the tile for the given rune.
func (tm *TileMapping) Encode(r rune) (Tile, error) {
	switch r {
	case BlankToken:
		return Blank, nil
	case EmptyToken, ' ':
		return EmptySquare, nil
	}
	if t, ok := tm.vals[r]; ok {
		return t, nil
	}
	if unicode.IsUpper(r) {
		if t, ok := tm.vals[unicode.ToLower(r)]; ok {
			return t.Blank(), nil
		}
	}
	return EmptySquare, fmt.Errorf("%w: `%c` not in alphabet %v", ErrInvalidSymbol, r, tm.name)
}

// Decode returns the user-visible rune for the given tile. Designated blanks
// decode to the upper-case letter.
func (tm *TileMapping) Decode(t Tile) (rune, error) {
	if t == Blank {
		return BlankToken, nil
	}
	if !t.IsLetter() {
		return 0, fmt.Errorf("%w: %#x has no letter", ErrInvalidTile, uint8(t))
	}
	label := int(t.Label())
	if label == 0 || label >= len(tm.letters) {
		return 0, fmt.Errorf("%w: label %d not in alphabet %v", ErrInvalidTile, label, tm.name)
	}
	r := tm.letters[label]
	if t.IsBlank() {
		return unicode.ToUpper(r), nil
	}
	return r, nil
}

// Letter returns the rune for the tile, or '?' if the tile cannot be decoded.
// The empty square shows as EmptyToken.
func (tm *TileMapping) Letter(t Tile) rune {
	if t == EmptySquare {
		return EmptyToken
	}
	r, err := tm.Decode(t)
	if err != nil {
		return '?'
	}
	return r
}

// ToTiles converts a user-visible string into tiles. The string is NFC
// normalized first so that composed and decomposed accents encode the same.
func ToTiles(s string, tm *TileMapping) (Word, error) {
	s = norm.NFC.String(s)
	tiles := make(Word, 0, len(s))
	for _, r := range s {
		t, err := tm.Encode(r)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// UserVisible turns the tiles into a user-visible string.
func (w Word) UserVisible(tm *TileMapping) string {
	var sb strings.Builder
	for _, t := range w {
		sb.WriteRune(tm.Letter(t))
	}
	return sb.String()
}

// String is a debugging representation of the set; it shows labels, not
// letters.
func (c LetterSet) String() string {
	return fmt.Sprintf("%v", c.Labels())
}

// UserVisible shows the letters of the set in label order.
func (c LetterSet) UserVisible(tm *TileMapping) string {
	var sb strings.Builder
	for _, l := range c.Labels() {
		sb.WriteRune(tm.Letter(FromLabel(l)))
	}
	return sb.String()
}
