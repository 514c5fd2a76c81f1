// Package movegen finds and scores every play a rack can make on a board.
// Each row and column is searched on its own: the words that fit are found
// by walking the trie forward from every start position, within the cross
// sets of the row.
package movegen

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/feudsolver/board"
	"github.com/domino14/feudsolver/config"
	"github.com/domino14/feudsolver/cross_set"
	"github.com/domino14/feudsolver/move"
	"github.com/domino14/feudsolver/tilemapping"
	"github.com/domino14/feudsolver/trie"
)

// PlayRecorderFunc receives every play the generator finds.
type PlayRecorderFunc func(*move.Move)

// Generator generates plays. The trie and the distribution are shared,
// read only, by every search, so one Generator may serve many goroutines.
type Generator struct {
	trie     *trie.Trie
	dist     *tilemapping.LetterDistribution
	crossGen *cross_set.Generator
	scorer   *Scorer
	threads  int
	minScore int
}

// NewGenerator returns a generator for the words of t scored with ld. The
// number of threads, the minimum score, the cross-set cache size and the
// bingo settings come from cfg.
func NewGenerator(cfg *config.Config, t *trie.Trie, ld *tilemapping.LetterDistribution) (*Generator, error) {
	if !ld.TileMapping().Equal(t.Alphabet()) {
		return nil, fmt.Errorf("%w: distribution %v, lexicon %v",
			tilemapping.ErrAlphabetMismatch, ld.Name, t.Name())
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	gen := &Generator{
		trie:     t,
		dist:     ld,
		crossGen: &cross_set.Generator{Trie: t, Dist: ld},
		scorer:   NewScorer(cfg, ld),
		minScore: cfg.GetInt(config.ConfigMinScore),
	}
	gen.SetThreads(cfg.GetInt(config.ConfigThreads))
	if size := cfg.GetInt(config.ConfigCrossSetCacheSize); size > 0 {
		cache, err := cross_set.NewCache(size)
		if err != nil {
			return nil, err
		}
		gen.crossGen.Cache = cache
	}
	return gen, nil
}

// SetThreads sets the number of rows searched at once. 0 or less uses one
// per CPU.
func (gen *Generator) SetThreads(threads int) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	gen.threads = threads
}

// SetMinScore makes the generator drop plays scoring less than s.
func (gen *Generator) SetMinScore(s int) {
	gen.minScore = s
}

func (gen *Generator) Scorer() *Scorer {
	return gen.scorer
}

func (gen *Generator) Trie() *trie.Trie {
	return gen.trie
}

// CrossSetCache returns the cross-set cache, or nil if there is none.
func (gen *Generator) CrossSetCache() *cross_set.Cache {
	return gen.crossGen.Cache
}

// GenRow finds the plays along r and passes each one to rec. rd must be the
// row data of r. The rack is borrowed: it changes during the search and is
// restored before GenRow returns, so it must not be shared with another
// search running at the same time.
func (gen *Generator) GenRow(r board.Row, rd *cross_set.RowData, rack *tilemapping.Rack,
	rec PlayRecorderFunc) {

	if !rd.AnyConnected() {
		return
	}
	tiles := r.Tiles()
	alph := gen.trie.Alphabet()
	vertical := r.Direction() == board.VerticalDirection

	m := newMatcher(gen.trie, tiles, rd, rack, func(start, end int, strip tilemapping.Word, placed []bool) {
		score, tilesPlayed := gen.scorer.scoreMatch(r, rd, start, strip[start:end], placed[start:end])
		if score < gen.minScore {
			return
		}
		row, col := r.Coords(start)
		rec(move.NewScoringMove(score, slices.Clone(strip[start:end]), slices.Clone(placed[start:end]),
			vertical, gen.scorer.IsBingo(tilesPlayed), alph, row, col))
	})
	for _, start := range StartIndices(tiles, rd, rack.NumTiles()) {
		m.run(start)
	}
}

// BestMoves returns the k best plays for rack on b, best first, in the
// order of move.Compare. A k of 0 or less returns every play. If there is
// no play the result is empty. b and rack are not changed.
func (gen *Generator) BestMoves(ctx context.Context, b *board.GameBoard, rack *tilemapping.Rack,
	k int) ([]*move.Move, error) {

	if !rack.Alphabet().Equal(gen.trie.Alphabet()) {
		return nil, fmt.Errorf("%w: rack %v, lexicon %v",
			tilemapping.ErrAlphabetMismatch, rack.Alphabet().Name(), gen.trie.Name())
	}
	rows := b.Rows()
	tops := make([]*TopK, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(gen.threads)
	for i, r := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			top := NewTopK(k)
			gen.GenRow(r, gen.crossGen.Generate(r), rack.Copy(), top.Offer)
			tops[i] = top
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := NewTopK(k)
	for _, top := range tops {
		best.Merge(top)
	}
	moves := best.Sorted()
	log.Debug().Str("rack", rack.String()).
		Int("considered", lo.SumBy(tops, func(t *TopK) int { return t.Seen() })).
		Int("returned", len(moves)).Msg("best-moves")
	if cache := gen.CrossSetCache(); cache != nil {
		cache.LogStats()
	}
	return moves, nil
}

// GenAll returns every play for rack on b, best first.
func (gen *Generator) GenAll(ctx context.Context, b *board.GameBoard, rack *tilemapping.Rack) ([]*move.Move, error) {
	return gen.BestMoves(ctx, b, rack, 0)
}
