package board

import (
	"fmt"

	"github.com/domino14/feudsolver/tilemapping"
)

type BoardDirection uint8

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

// Other returns the perpendicular direction.
func (bd BoardDirection) Other() BoardDirection {
	if bd == HorizontalDirection {
		return VerticalDirection
	}
	return HorizontalDirection
}

// A GameBoard is the main board structure. It contains all of the Squares,
// with bonuses or filled letters. Squares are stored row-major.
type GameBoard struct {
	layout      *Layout
	squares     []Square
	tilesPlayed int
}

// MakeBoard creates an empty board with the given layout.
func MakeBoard(layout *Layout) *GameBoard {
	g := &GameBoard{
		layout:  layout,
		squares: make([]Square, len(layout.squares)),
	}
	copy(g.squares, layout.squares)
	return g
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return g.layout.dim
}

func (g *GameBoard) Layout() *Layout {
	return g.layout
}

func (g *GameBoard) posExists(row int, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

func (g *GameBoard) GetSquare(row int, col int) *Square {
	return &g.squares[row*g.layout.dim+col]
}

func (g *GameBoard) GetLetter(row int, col int) tilemapping.Tile {
	return g.GetSquare(row, col).letter
}

// HasLetter returns true if the square exists and holds a tile.
func (g *GameBoard) HasLetter(row int, col int) bool {
	return g.posExists(row, col) && !g.GetSquare(row, col).IsEmpty()
}

// SetLetter puts a tile on a square, or empties it with
// tilemapping.EmptySquare.
func (g *GameBoard) SetLetter(row int, col int, t tilemapping.Tile) {
	sq := g.GetSquare(row, col)
	if sq.IsEmpty() && t != tilemapping.EmptySquare {
		g.tilesPlayed++
	} else if !sq.IsEmpty() && t == tilemapping.EmptySquare {
		g.tilesPlayed--
	}
	sq.letter = t
}

func (g *GameBoard) LetterMultiplier(row int, col int) int {
	return g.GetSquare(row, col).LetterMultiplier()
}

func (g *GameBoard) WordMultiplier(row int, col int) int {
	return g.GetSquare(row, col).WordMultiplier()
}

func (g *GameBoard) IsStart(row int, col int) bool {
	return g.GetSquare(row, col).IsStart()
}

// StartSquare returns the row and column of the start square.
func (g *GameBoard) StartSquare() (int, int) {
	return g.layout.StartSquare()
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// TilesPlayed returns the number of tiles on the board.
func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// Clear clears the board.
func (g *GameBoard) Clear() {
	copy(g.squares, g.layout.squares)
	g.tilesPlayed = 0
}

// Copy returns a deep copy of this board. The layout is shared.
func (g *GameBoard) Copy() *GameBoard {
	newg := &GameBoard{
		layout:      g.layout,
		squares:     make([]Square, len(g.squares)),
		tilesPlayed: g.tilesPlayed,
	}
	copy(newg.squares, g.squares)
	return newg
}

// CopyFrom copies the squares of the other board into this one. Both boards
// must share a layout size.
func (g *GameBoard) CopyFrom(other *GameBoard) {
	g.layout = other.layout
	if len(g.squares) != len(other.squares) {
		g.squares = make([]Square, len(other.squares))
	}
	copy(g.squares, other.squares)
	g.tilesPlayed = other.tilesPlayed
}

// PlayWord places word on the board starting at row, col and running in the
// given direction. Squares that already hold a tile must hold the same
// letter; they are played through. Nothing is placed if the word does not
// fit. It returns the tiles that were newly placed, which are the tiles the
// play used from the rack.
func (g *GameBoard) PlayWord(word tilemapping.Word, row, col int, dir BoardDirection) (tilemapping.Word, error) {
	dr, dc := 0, 1
	if dir == VerticalDirection {
		dr, dc = 1, 0
	}
	endRow, endCol := row+dr*(len(word)-1), col+dc*(len(word)-1)
	if len(word) == 0 || !g.posExists(row, col) || !g.posExists(endRow, endCol) {
		return nil, fmt.Errorf("%w: %d letters at %d,%d %v",
			ErrPlacementOutOfBounds, len(word), row, col, dir)
	}
	for i, t := range word {
		if !t.IsLetter() {
			return nil, fmt.Errorf("%w: %#x at index %d", tilemapping.ErrInvalidTile, uint8(t), i)
		}
		existing := g.GetLetter(row+dr*i, col+dc*i)
		if existing != tilemapping.EmptySquare && existing != t {
			return nil, fmt.Errorf("%w at %d,%d", ErrTileReplace, row+dr*i, col+dc*i)
		}
	}
	used := make(tilemapping.Word, 0, len(word))
	for i, t := range word {
		r, c := row+dr*i, col+dc*i
		if g.GetSquare(r, c).IsEmpty() {
			g.SetLetter(r, c, t)
			used = append(used, t)
		}
	}
	return used, nil
}
