package tilemapping

import (
	"fmt"
)

// Rack is a machine-friendly representation of a user's rack. It is a value
// type: assigning a Rack copies its counts, so each worker can own one.
type Rack struct {
	// LetArr holds the count of each letter, indexed by label.
	// The blank goes at 0.
	LetArr     [MaxAlphabetSize + 1]uint8
	numLetters uint8
	alphabet   *TileMapping
}

// NewRack creates an empty rack for an alphabet.
func NewRack(alph *TileMapping) *Rack {
	return &Rack{alphabet: alph}
}

// RackFromString creates a Rack from a string and an alphabet. Use `*` for
// blanks.
func RackFromString(rack string, a *TileMapping) (*Rack, error) {
	r := NewRack(a)
	tiles, err := ToTiles(rack, a)
	if err != nil {
		return nil, fmt.Errorf("rack %q: %w", rack, err)
	}
	if err := r.Set(tiles); err != nil {
		return nil, fmt.Errorf("rack %q: %w", rack, err)
	}
	return r, nil
}

// Set sets the rack from a list of tiles. Designated blanks go back to the
// blank slot.
func (r *Rack) Set(tiles []Tile) error {
	r.Clear()
	for _, t := range tiles {
		if t == EmptySquare {
			return fmt.Errorf("%w: empty square on rack", ErrInvalidTile)
		}
		r.Add(t)
	}
	return nil
}

// Clear removes every tile.
func (r *Rack) Clear() {
	r.LetArr = [MaxAlphabetSize + 1]uint8{}
	r.numLetters = 0
}

// Alphabet returns the tile mapping this rack was built with.
func (r *Rack) Alphabet() *TileMapping {
	return r.alphabet
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.TilesOn().UserVisible(r.alphabet)
}

// Copy returns a copy of this rack.
func (r *Rack) Copy() *Rack {
	n := *r
	return &n
}

// CopyFrom overwrites this rack with the contents of other.
func (r *Rack) CopyFrom(other *Rack) {
	*r = *other
}

// Has returns true if the letter of t can be played from this rack, either
// as the letter itself or as a blank.
func (r *Rack) Has(t Tile) bool {
	return r.LetArr[t.Label()] > 0 || r.LetArr[0] > 0
}

// Take removes the letter of t from the rack and returns the tile to put on
// the board. The exact letter is preferred. Otherwise a blank is used and
// the designated blank is returned.
func (r *Rack) Take(t Tile) (Tile, error) {
	label := t.Label()
	if label != 0 && r.LetArr[label] > 0 {
		r.LetArr[label]--
		r.numLetters--
		return FromLabel(label), nil
	}
	if r.LetArr[0] > 0 {
		r.LetArr[0]--
		r.numLetters--
		if label == 0 {
			return Blank, nil
		}
		return FromLabel(label).Blank(), nil
	}
	return EmptySquare, fmt.Errorf("%w: %c", ErrNotAvailable, r.alphabet.Letter(t))
}

// TakeExact removes exactly the tile t: a designated blank consumes a blank,
// a letter consumes that letter.
func (r *Rack) TakeExact(t Tile) error {
	idx := t.Label()
	if t.IsBlank() {
		idx = 0
	}
	if r.LetArr[idx] == 0 {
		return fmt.Errorf("%w: %c", ErrNotAvailable, r.alphabet.Letter(t))
	}
	r.LetArr[idx]--
	r.numLetters--
	return nil
}

// Add restores a tile to the rack. Blanks, designated or not, go back to the
// blank slot.
func (r *Rack) Add(t Tile) {
	if t.IsBlank() {
		r.LetArr[0]++
	} else {
		r.LetArr[t.Label()]++
	}
	r.numLetters++
}

// CountOf returns the number of tiles with the letter of t. A blank tile
// counts the blanks.
func (r *Rack) CountOf(t Tile) int {
	if t.IsBlank() {
		return int(r.LetArr[0])
	}
	return int(r.LetArr[t.Label()])
}

// NumTiles returns the number of tiles on the rack.
func (r *Rack) NumTiles() int {
	return int(r.numLetters)
}

// Empty returns true if there are no tiles on the rack.
func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

// TilesOn returns the tiles on the rack, letters in label order followed by
// the blanks.
func (r *Rack) TilesOn() Word {
	tiles := make(Word, 0, r.numLetters)
	for i := 1; i < len(r.LetArr); i++ {
		for j := uint8(0); j < r.LetArr[i]; j++ {
			tiles = append(tiles, FromLabel(uint8(i)))
		}
	}
	for j := uint8(0); j < r.LetArr[0]; j++ {
		tiles = append(tiles, Blank)
	}
	return tiles
}

// ScoreOn returns the total score of the tiles on this rack.
func (r *Rack) ScoreOn(ld *LetterDistribution) int {
	score := 0
	for i := 1; i < len(r.LetArr); i++ {
		score += int(r.LetArr[i]) * ld.Score(FromLabel(uint8(i)))
	}
	return score
}
