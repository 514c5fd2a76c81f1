package movegen

import (
	"slices"
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/domino14/feudsolver/move"
	"github.com/domino14/feudsolver/tilemapping"
)

func sampleMoves(t *testing.T) []*move.Move {
	alph := tilemapping.EnglishAlphabet()
	specs := []struct {
		score  int
		coords string
		word   string
	}{
		{12, "8H", "bel"},
		{30, "8C", "hulpen"},
		{7, "A1", "al"},
		{30, "H3", "hulpen"},
		{25, "8D", "hulp"},
		{12, "8G", "bel"},
		{40, "O1", "belt"},
		{3, "B2", "ta"},
		{30, "8D", "hulpen"},
	}
	moves := make([]*move.Move, len(specs))
	for i, s := range specs {
		m, err := move.NewScoringMoveSimple(s.score, s.coords, s.word, alph)
		if err != nil {
			t.Fatal(err)
		}
		moves[i] = m
	}
	return moves
}

func descriptions(moves []*move.Move) []string {
	return lo.Map(moves, func(m *move.Move, _ int) string {
		return m.ShortDescription()
	})
}

func TestTopK(t *testing.T) {
	is := is.New(t)
	top := NewTopK(4)
	for _, m := range sampleMoves(t) {
		top.Offer(m)
	}
	is.Equal(top.Len(), 4)
	is.Equal(top.Seen(), 9)
	is.Equal(descriptions(top.Sorted()), []string{"O1 belt", "8C hulpen", "8D hulpen", "H3 hulpen"})
}

func TestTopKUnbounded(t *testing.T) {
	is := is.New(t)
	top := NewTopK(0)
	for _, m := range sampleMoves(t) {
		top.Offer(m)
	}
	is.Equal(top.Len(), 9)
	is.Equal(descriptions(top.Sorted()), []string{
		"O1 belt", "8C hulpen", "8D hulpen", "H3 hulpen", "8D hulp",
		"8G bel", "8H bel", "A1 al", "B2 ta",
	})
	is.Equal(len(NewTopK(3).Sorted()), 0)
}

// However the moves are split up and merged, the result is the same.
func TestTopKMerge(t *testing.T) {
	is := is.New(t)
	moves := sampleMoves(t)
	whole := NewTopK(5)
	for _, m := range moves {
		whole.Offer(m)
	}
	expected := descriptions(whole.Sorted())

	for _, size := range []int{1, 2, 4} {
		var parts []*TopK
		for _, chunk := range lo.Chunk(moves, size) {
			part := NewTopK(5)
			for _, m := range chunk {
				part.Offer(m)
			}
			parts = append(parts, part)
		}
		reversed := slices.Clone(parts)
		slices.Reverse(reversed)
		for _, order := range [][]*TopK{parts, reversed} {
			merged := NewTopK(5)
			for _, p := range order {
				merged.Merge(p)
			}
			is.Equal(descriptions(merged.Sorted()), expected)
			is.Equal(merged.Seen(), len(moves))
		}
	}
}
