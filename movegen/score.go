package movegen

import (
	"fmt"

	"github.com/domino14/feudsolver/board"
	"github.com/domino14/feudsolver/config"
	"github.com/domino14/feudsolver/cross_set"
	"github.com/domino14/feudsolver/tilemapping"
)

const (
	DefaultBingoBonus = 40
	DefaultBingoTiles = 7
)

// A Scorer scores plays. Every tile the play puts down is worth its value
// times the letter multiplier of its square, and each word multiplier it
// covers multiplies the word. Tiles played through count at face value.
// Every perpendicular word a new tile forms is scored the same way, and a
// play of BingoTiles or more tiles earns BingoBonus.
type Scorer struct {
	Dist       *tilemapping.LetterDistribution
	BingoBonus int
	BingoTiles int
}

// NewScorer returns a scorer with the bingo settings of cfg, or the
// defaults if cfg is nil.
func NewScorer(cfg *config.Config, ld *tilemapping.LetterDistribution) *Scorer {
	s := &Scorer{Dist: ld, BingoBonus: DefaultBingoBonus, BingoTiles: DefaultBingoTiles}
	if cfg != nil {
		s.BingoBonus = cfg.GetInt(config.ConfigBingoBonus)
		s.BingoTiles = cfg.GetInt(config.ConfigBingoTiles)
	}
	return s
}

// IsBingo returns true if a play of tilesPlayed tiles earns the bonus.
func (s *Scorer) IsBingo(tilesPlayed int) bool {
	return s.BingoTiles > 0 && tilesPlayed >= s.BingoTiles
}

// crossFunc returns the face value of the perpendicular tiles next to pos,
// and false if there are none.
type crossFunc func(pos int) (int, bool)

func (s *Scorer) score(r board.Row, start int, tiles tilemapping.Word, placed []bool,
	cross crossFunc) (int, int) {

	wordPts, wordMult, crossPts, tilesPlayed := 0, 1, 0, 0
	for i, t := range tiles {
		v := s.Dist.Score(t)
		if !placed[i] {
			wordPts += v
			continue
		}
		pos := start + i
		tilesPlayed++
		lm, wm := r.LetterMultiplier(pos), r.WordMultiplier(pos)
		wordPts += v * lm
		wordMult *= wm
		if cs, ok := cross(pos); ok {
			crossPts += (cs + v*lm) * wm
		}
	}
	total := wordPts*wordMult + crossPts
	if s.IsBingo(tilesPlayed) {
		total += s.BingoBonus
	}
	return total, tilesPlayed
}

// scoreMatch scores a word found on r, using the cross scores of rd.
func (s *Scorer) scoreMatch(r board.Row, rd *cross_set.RowData, start int,
	tiles tilemapping.Word, placed []bool) (int, int) {

	return s.score(r, start, tiles, placed, func(pos int) (int, bool) {
		return rd.CrossScores[pos], rd.Hooks[pos]
	})
}

// Score scores word played on b from row, col in direction dir. The play
// must not be on the board yet. Squares that already hold a tile must hold
// the same letter, and are played through.
func (s *Scorer) Score(b *board.GameBoard, word tilemapping.Word, row, col int,
	dir board.BoardDirection) (int, error) {

	line, start := b.Row(row, dir), col
	if dir == board.VerticalDirection {
		line, start = b.Row(col, dir), row
	}
	if row < 0 || col < 0 || row >= b.Dim() || col >= b.Dim() || start+len(word) > line.Len() {
		return 0, fmt.Errorf("%w: %d letters at %d,%d %v",
			board.ErrPlacementOutOfBounds, len(word), row, col, dir)
	}
	tiles := make(tilemapping.Word, len(word))
	placed := make([]bool, len(word))
	for i, t := range word {
		pos := start + i
		if line.HasLetter(pos) {
			if line.Letter(pos).Label() != t.Label() {
				return 0, fmt.Errorf("%w: at position %d", board.ErrTileReplace, pos)
			}
			tiles[i] = line.Letter(pos)
			continue
		}
		if !t.IsLetter() {
			return 0, fmt.Errorf("%w: %v at position %d", tilemapping.ErrInvalidTile, t, pos)
		}
		tiles[i] = t
		placed[i] = true
	}
	score, _ := s.score(line, start, tiles, placed, func(pos int) (int, bool) {
		prefix, suffix := cross_set.Perpendicular(line.Cross(pos), line.Index())
		if len(prefix) == 0 && len(suffix) == 0 {
			return 0, false
		}
		return s.Dist.WordScore(prefix) + s.Dist.WordScore(suffix), true
	})
	return score, nil
}
