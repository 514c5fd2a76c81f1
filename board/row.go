package board

import "github.com/domino14/feudsolver/tilemapping"

// A Row is a read-only view of one line of the board, either a row
// (horizontal) or a column (vertical). Positions run from 0 to Len()-1,
// left to right or top to bottom.
type Row struct {
	board *GameBoard
	idx   int
	dir   BoardDirection
}

// Row returns the line with the given index in the given direction: row idx
// for HorizontalDirection, column idx for VerticalDirection.
func (g *GameBoard) Row(idx int, dir BoardDirection) Row {
	return Row{board: g, idx: idx, dir: dir}
}

// Rows returns every row and then every column of the board.
func (g *GameBoard) Rows() []Row {
	rows := make([]Row, 0, 2*g.Dim())
	for _, dir := range []BoardDirection{HorizontalDirection, VerticalDirection} {
		for i := 0; i < g.Dim(); i++ {
			rows = append(rows, g.Row(i, dir))
		}
	}
	return rows
}

func (r Row) Len() int {
	return r.board.Dim()
}

func (r Row) Index() int {
	return r.idx
}

func (r Row) Direction() BoardDirection {
	return r.dir
}

func (r Row) Board() *GameBoard {
	return r.board
}

// Coords returns the board row and column of position pos.
func (r Row) Coords(pos int) (int, int) {
	if r.dir == VerticalDirection {
		return pos, r.idx
	}
	return r.idx, pos
}

func (r Row) square(pos int) *Square {
	row, col := r.Coords(pos)
	return r.board.GetSquare(row, col)
}

func (r Row) Letter(pos int) tilemapping.Tile {
	return r.square(pos).letter
}

// HasLetter returns false for positions off the board.
func (r Row) HasLetter(pos int) bool {
	return pos >= 0 && pos < r.Len() && !r.square(pos).IsEmpty()
}

func (r Row) LetterMultiplier(pos int) int {
	return r.square(pos).LetterMultiplier()
}

func (r Row) WordMultiplier(pos int) int {
	return r.square(pos).WordMultiplier()
}

func (r Row) IsStart(pos int) bool {
	return r.square(pos).IsStart()
}

// Cross returns the perpendicular line through position pos. In the
// returned row this line's index is the position of the crossing square.
func (r Row) Cross(pos int) Row {
	return Row{board: r.board, idx: pos, dir: r.dir.Other()}
}

// Tiles returns the tiles of the row; empty squares are
// tilemapping.EmptySquare.
func (r Row) Tiles() tilemapping.Word {
	w := make(tilemapping.Word, r.Len())
	for i := range w {
		w[i] = r.Letter(i)
	}
	return w
}
