package board

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/domino14/feudsolver/tilemapping"
)

func (g *GameBoard) ToDisplayText(tm *tilemapping.TileMapping) string {
	var sb strings.Builder
	n := g.Dim()
	sb.WriteString("   ")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			sb.WriteString(g.GetSquare(i, j).DisplayString(tm) + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + sb.String()
}

// ToStrings renders the tiles of the board, one string per row, in the
// format SetFromStrings reads.
func (g *GameBoard) ToStrings(tm *tilemapping.TileMapping) []string {
	rows := make([]string, g.Dim())
	for i := range rows {
		rows[i] = g.Row(i, HorizontalDirection).Tiles().UserVisible(tm)
	}
	return rows
}

// SetFromStrings sets the tiles of the board from one string per row. Each
// string has one symbol per square: a lower-case letter, an upper-case
// letter for a designated blank, or '.' or ' ' for an empty square.
// The board is cleared first. It returns the tiles on the board.
func (g *GameBoard) SetFromStrings(rows []string, tm *tilemapping.TileMapping) (tilemapping.Word, error) {
	n := g.Dim()
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrInvalidDimensions, len(rows), n)
	}
	parsed := make([]tilemapping.Word, n)
	for i, s := range rows {
		s = norm.NFC.String(s)
		if len([]rune(s)) != n {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d",
				ErrInvalidDimensions, i, len([]rune(s)), n)
		}
		w, err := tilemapping.ToTiles(s, tm)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		for j, t := range w {
			if t == tilemapping.Blank {
				return nil, fmt.Errorf("row %d col %d: %w: undesignated blank on board",
					i, j, tilemapping.ErrInvalidTile)
			}
		}
		parsed[i] = w
	}
	g.Clear()
	played := tilemapping.Word{}
	for i, w := range parsed {
		for j, t := range w {
			if t != tilemapping.EmptySquare {
				g.SetLetter(i, j, t)
				played = append(played, t)
			}
		}
	}
	log.Debug().Int("tiles", len(played)).Msg("board-set-from-strings")
	return played, nil
}

// readLines returns the non-empty lines of r that do not start with #.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// SetFromReader is SetFromStrings for a file of one line per row. Empty
// lines and lines starting with # are skipped.
func (g *GameBoard) SetFromReader(r io.Reader, tm *tilemapping.TileMapping) (tilemapping.Word, error) {
	rows, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return g.SetFromStrings(rows, tm)
}

// Equals checks the boards for equality. Two boards are equal if all
// the squares are equal.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() {
		log.Debug().Int("dim1", g.Dim()).Int("dim2", g2.Dim()).Msg("dims-dont-match")
		return false
	}
	if g.tilesPlayed != g2.tilesPlayed {
		log.Debug().Int("tp1", g.tilesPlayed).Int("tp2", g2.tilesPlayed).Msg("tiles-played-dont-match")
		return false
	}
	for i := range g.squares {
		if g.squares[i] != g2.squares[i] {
			log.Debug().Int("idx", i).Msg("squares-not-equal")
			return false
		}
	}
	return true
}
