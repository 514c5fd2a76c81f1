package board

import (
	"fmt"
	"io"
	"strings"
)

// Layout names accepted by NamedLayout.
const (
	WordfeudLayoutName      = "wordfeud"
	CrosswordGameLayoutName = "crosswordgame"
)

var (
	// WordfeudQuarter is the top-left quarter of the standard Wordfeud board,
	// center square included. The rest of the board is its mirror image.
	WordfeudQuarter = []string{
		"3l -- -- -- 3w -- -- 2l",
		"-- 2l -- -- -- 3l -- --",
		"-- -- 2w -- -- -- 2l --",
		"-- -- -- 3l -- -- -- 2w",
		"3w -- -- -- 2w -- 2l --",
		"-- 3l -- -- -- 3l -- --",
		"-- -- 2l -- 2l -- -- --",
		"2l -- -- 2w -- -- -- ss",
	}

	// CrosswordGameBoard is a board for a fun Crossword Game, featuring lots
	// of wingos and blonks. Symbols: = triple word, - double word,
	// " triple letter, ' double letter. The center square is the start.
	CrosswordGameBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   -   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
)

var symbolTokens = map[rune]string{
	' ':  "--",
	'=':  "3w",
	'-':  "2w",
	'"':  "3l",
	'\'': "2l",
}

// MirrorQuarter expands the top-left quarter of a symmetric board, center
// row and column included, into the full board.
func MirrorQuarter(quarter []string) []string {
	q := make([][]string, len(quarter))
	for i, row := range quarter {
		q[i] = strings.Fields(row)
	}
	n := len(q)*2 - 1
	full := make([][]string, n)
	for i := range full {
		full[i] = make([]string, n)
	}
	for i := range q {
		for j, tok := range q[i] {
			full[i][j] = tok
			full[n-1-i][j] = tok
			full[i][n-1-j] = tok
			full[n-1-i][n-1-j] = tok
		}
	}
	rows := make([]string, n)
	for i := range full {
		rows[i] = strings.Join(full[i], " ")
	}
	return rows
}

// symbolsToTokens converts a board drawn with one bonus symbol per square
// into layout tokens.
func symbolsToTokens(desc []string, start int) []string {
	rows := make([]string, len(desc))
	for i, s := range desc {
		toks := make([]string, 0, len(s))
		for j, c := range s {
			tok := symbolTokens[c]
			if i == start && j == start && tok == "--" {
				tok = "ss"
			}
			toks = append(toks, tok)
		}
		rows[i] = strings.Join(toks, " ")
	}
	return rows
}

// WordfeudLayout returns the standard Wordfeud layout. Its start square
// carries no multiplier.
func WordfeudLayout() *Layout {
	l, err := ParseLayout(WordfeudLayoutName, MirrorQuarter(WordfeudQuarter))
	if err != nil {
		panic(err)
	}
	return l
}

// CrosswordGameLayout returns the classic crossword game layout, with a
// double word score on the start square.
func CrosswordGameLayout() *Layout {
	dim := len(CrosswordGameBoard)
	l, err := ParseLayout(CrosswordGameLayoutName, symbolsToTokens(CrosswordGameBoard, dim/2))
	if err != nil {
		panic(err)
	}
	return l
}

// NamedLayout returns one of the built-in layouts.
func NamedLayout(name string) (*Layout, error) {
	switch strings.ToLower(name) {
	case WordfeudLayoutName, "":
		return WordfeudLayout(), nil
	case CrosswordGameLayoutName:
		return CrosswordGameLayout(), nil
	}
	return nil, fmt.Errorf("layout %v not found", name)
}

// ReadLayout reads a layout with one line of tokens per row, in the format
// ParseLayout takes.
func ReadLayout(name string, r io.Reader) (*Layout, error) {
	rows, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return ParseLayout(name, rows)
}
