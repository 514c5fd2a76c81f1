package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/feudsolver/tilemapping"
)

var (
	ErrPlacementOutOfBounds = errors.New("placement out of bounds")
	ErrTileReplace          = errors.New("square already holds a different tile")
	ErrInvalidDimensions    = errors.New("invalid board dimensions")
)

// A Square is a single square in a game board. It contains the bonus
// multipliers, the start marking and a tile, if any.
type Square struct {
	letter     tilemapping.Tile
	letterMult uint8
	wordMult   uint8
	start      bool
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v) (%s)>", s.letter, s.Token())
}

// Letter returns the tile on this square, or tilemapping.EmptySquare.
func (s *Square) Letter() tilemapping.Tile {
	return s.letter
}

func (s *Square) IsEmpty() bool {
	return s.letter == tilemapping.EmptySquare
}

// LetterMultiplier is the factor applied to a tile newly placed here.
func (s *Square) LetterMultiplier() int {
	return int(s.letterMult)
}

// WordMultiplier is the factor applied to a word that newly covers this
// square.
func (s *Square) WordMultiplier() int {
	return int(s.wordMult)
}

func (s *Square) IsStart() bool {
	return s.start
}

// Token returns the layout token for the square's bonus.
func (s Square) Token() string {
	switch {
	case s.wordMult > 1:
		return fmt.Sprintf("%dw", s.wordMult)
	case s.letterMult > 1:
		return fmt.Sprintf("%dl", s.letterMult)
	case s.start:
		return "ss"
	}
	return "--"
}

// DisplayString is the square as shown on a text board: the letter if
// there is one, otherwise a bonus marker.
func (s Square) DisplayString(tm *tilemapping.TileMapping) string {
	if !s.IsEmpty() {
		return string(tm.Letter(s.letter))
	}
	switch {
	case s.wordMult == 3:
		return "="
	case s.wordMult == 2:
		return "-"
	case s.letterMult == 3:
		return "\""
	case s.letterMult == 2:
		return "'"
	case s.start:
		return "*"
	}
	return "."
}

// A Layout is the empty board: the bonus squares and the start square.
type Layout struct {
	name     string
	dim      int
	squares  []Square
	startRow int
	startCol int
}

// ParseLayout builds a layout from one string per row. Each row holds one
// whitespace-separated token per square:
//
//	-- plain square
//	ss start square
//	2l 3l double or triple letter
//	2w 3w double or triple word
//
// The board must be square and have exactly one start square.
func ParseLayout(name string, rows []string) (*Layout, error) {
	dim := len(rows)
	if dim == 0 {
		return nil, fmt.Errorf("%w: layout %v has no rows", ErrInvalidDimensions, name)
	}
	l := &Layout{name: name, dim: dim, squares: make([]Square, dim*dim), startRow: -1}
	for i, row := range rows {
		toks := strings.Fields(row)
		if len(toks) != dim {
			return nil, fmt.Errorf("%w: layout %v row %d has %d squares, want %d",
				ErrInvalidDimensions, name, i, len(toks), dim)
		}
		for j, tok := range toks {
			sq := Square{letterMult: 1, wordMult: 1}
			switch tok {
			case "--":
			case "ss":
				sq.start = true
			case "2l":
				sq.letterMult = 2
			case "3l":
				sq.letterMult = 3
			case "2w":
				sq.wordMult = 2
			case "3w":
				sq.wordMult = 3
			default:
				return nil, fmt.Errorf("layout %v: unknown token %q at %d,%d", name, tok, i, j)
			}
			if sq.start {
				if l.startRow != -1 {
					return nil, fmt.Errorf("layout %v: more than one start square", name)
				}
				l.startRow, l.startCol = i, j
			}
			l.squares[i*dim+j] = sq
		}
	}
	if l.startRow == -1 {
		// Boards drawn without an explicit start square start in the middle.
		l.startRow, l.startCol = dim/2, dim/2
	}
	l.squares[l.startRow*dim+l.startCol].start = true
	return l, nil
}

func (l *Layout) Name() string {
	return l.name
}

func (l *Layout) Dim() int {
	return l.dim
}

// StartSquare returns the row and column of the start square.
func (l *Layout) StartSquare() (int, int) {
	return l.startRow, l.startCol
}

// Strings renders the layout back into token rows.
func (l *Layout) Strings() []string {
	rows := make([]string, l.dim)
	for i := 0; i < l.dim; i++ {
		toks := make([]string, l.dim)
		for j := 0; j < l.dim; j++ {
			toks[j] = l.squares[i*l.dim+j].Token()
		}
		rows[i] = strings.Join(toks, " ")
	}
	return rows
}
