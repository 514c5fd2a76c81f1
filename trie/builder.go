package trie

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/feudsolver/tilemapping"
)

type buildNode struct {
	children map[uint8]*buildNode
	terminal bool
}

// Make builds a trie from encoded words. Designated blanks count as the
// letter they stand for. Duplicates are ignored. Empty words and words
// holding an undesignated blank or an empty square are rejected.
func Make(tm *tilemapping.TileMapping, words []tilemapping.Word) (*Trie, error) {
	root := &buildNode{children: map[uint8]*buildNode{}}
	t := &Trie{alphabet: tm}
	for _, w := range words {
		if len(w) == 0 {
			return nil, fmt.Errorf("%w: empty word", tilemapping.ErrInvalidSymbol)
		}
		n := root
		for _, tile := range w {
			if !tile.IsLetter() {
				return nil, fmt.Errorf("%w: %q has a non-letter",
					tilemapping.ErrInvalidSymbol, w.UserVisible(tm))
			}
			label := tile.Label()
			if int(label) > tm.NumLetters() {
				return nil, fmt.Errorf("%w: label %d not in alphabet %v",
					tilemapping.ErrInvalidSymbol, label, tm.Name())
			}
			child, ok := n.children[label]
			if !ok {
				child = &buildNode{children: map[uint8]*buildNode{}}
				n.children[label] = child
			}
			t.letters.Add(label)
			n = child
		}
		if !n.terminal {
			n.terminal = true
			t.numWords++
		}
	}
	t.flatten(root)
	return t, nil
}

// flatten lays the tree out breadth-first, so that the children of every
// node are contiguous and in label order.
func (t *Trie) flatten(root *buildNode) {
	queue := []*buildNode{root}
	t.nodes = []node{{}}
	for i := 0; i < len(queue); i++ {
		bn := queue[i]
		labels := make([]uint8, 0, len(bn.children))
		for l := range bn.children {
			labels = append(labels, l)
		}
		sort.Slice(labels, func(a, b int) bool { return labels[a] < labels[b] })

		t.nodes[i].firstChild = uint32(len(queue))
		for _, l := range labels {
			child := bn.children[l]
			t.nodes[i].children.Add(l)
			queue = append(queue, child)
			t.nodes = append(t.nodes, node{terminal: child.terminal})
		}
	}
}

// MakeFromStrings encodes words with the tile mapping and builds a trie.
// Words are folded to lower case.
func MakeFromStrings(tm *tilemapping.TileMapping, words []string) (*Trie, error) {
	encoded := make([]tilemapping.Word, 0, len(words))
	for _, s := range words {
		w, err := tilemapping.ToTiles(strings.ToLower(s), tm)
		if err != nil {
			return nil, fmt.Errorf("word %q: %w", s, err)
		}
		encoded = append(encoded, w)
	}
	return Make(tm, encoded)
}

// Load reads a word list with one word per line. Anything after the first
// whitespace on a line is ignored, as are blank lines and lines starting
// with #.
func Load(r io.Reader, tm *tilemapping.TileMapping) (*Trie, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		words = append(words, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	t, err := MakeFromStrings(tm, words)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("num-words", t.WordCount()).Int("num-nodes", t.NodeCount()).
		Msg("loaded-trie")
	return t, nil
}
