package trie

import (
	"github.com/domino14/feudsolver/tilemapping"
)

type node struct {
	// firstChild is the index of the child with the lowest label. The
	// other children follow it in label order.
	firstChild uint32
	children   tilemapping.LetterSet
	terminal   bool
}

// A Trie is an immutable prefix tree of words, stored as a flat slice of
// nodes in breadth-first order. The root is node 0, which is never anybody's
// child, so 0 doubles as "no such node". It is safe for concurrent use.
type Trie struct {
	nodes    []node
	alphabet *tilemapping.TileMapping
	letters  tilemapping.LetterSet
	numWords int
	name     string
}

func (t *Trie) RootNodeIndex() uint32 {
	return 0
}

func (t *Trie) Alphabet() *tilemapping.TileMapping {
	return t.alphabet
}

func (t *Trie) Name() string {
	return t.name
}

// WordCount returns the number of distinct words in the trie.
func (t *Trie) WordCount() int {
	return t.numWords
}

// NodeCount returns the number of nodes, the root included.
func (t *Trie) NodeCount() int {
	return len(t.nodes)
}

// AllLetters returns the set of labels used by at least one word.
func (t *Trie) AllLetters() tilemapping.LetterSet {
	return t.letters
}

// NextNodeIdx returns the child of nodeIdx for the letter of tile, or 0 if
// there is none. Designated blanks follow the letter they stand for.
func (t *Trie) NextNodeIdx(nodeIdx uint32, tile tilemapping.Tile) uint32 {
	n := &t.nodes[nodeIdx]
	off, ok := n.children.IndexOf(tile.Label())
	if !ok {
		return 0
	}
	return n.firstChild + uint32(off)
}

// IsTerminal returns true if the path to nodeIdx spells a word.
func (t *Trie) IsTerminal(nodeIdx uint32) bool {
	return t.nodes[nodeIdx].terminal
}

// Children returns the labels of the children of nodeIdx.
func (t *Trie) Children(nodeIdx uint32) tilemapping.LetterSet {
	return t.nodes[nodeIdx].children
}

// IterateChildren calls cb for every child of nodeIdx, in label order.
func (t *Trie) IterateChildren(nodeIdx uint32, cb func(label uint8, childIdx uint32)) {
	n := &t.nodes[nodeIdx]
	for i, label := range n.children.Labels() {
		cb(label, n.firstChild+uint32(i))
	}
}

// Walk follows the letters of w from nodeIdx. It returns 0 if the path
// leaves the trie.
func (t *Trie) Walk(nodeIdx uint32, w tilemapping.Word) uint32 {
	for _, tile := range w {
		nodeIdx = t.NextNodeIdx(nodeIdx, tile)
		if nodeIdx == 0 {
			return 0
		}
	}
	return nodeIdx
}

// IsWord returns true if w is in the trie.
func (t *Trie) IsWord(w tilemapping.Word) bool {
	if len(w) == 0 {
		return false
	}
	n := t.Walk(t.RootNodeIndex(), w)
	return n != 0 && t.IsTerminal(n)
}

// CrossLetters returns the labels L such that prefix + L + suffix is a word.
func (t *Trie) CrossLetters(prefix, suffix tilemapping.Word) tilemapping.LetterSet {
	var ls tilemapping.LetterSet
	n := t.RootNodeIndex()
	if len(prefix) > 0 {
		n = t.Walk(n, prefix)
		if n == 0 {
			return 0
		}
	}
	t.IterateChildren(n, func(label uint8, child uint32) {
		end := t.Walk(child, suffix)
		if end != 0 && t.IsTerminal(end) {
			ls.Add(label)
		}
	})
	return ls
}

// Words returns every word in the trie, in label order.
func (t *Trie) Words() []tilemapping.Word {
	words := make([]tilemapping.Word, 0, t.numWords)
	var prefix tilemapping.Word
	var walk func(nodeIdx uint32)
	walk = func(nodeIdx uint32) {
		if t.IsTerminal(nodeIdx) {
			w := make(tilemapping.Word, len(prefix))
			copy(w, prefix)
			words = append(words, w)
		}
		t.IterateChildren(nodeIdx, func(label uint8, child uint32) {
			prefix = append(prefix, tilemapping.FromLabel(label))
			walk(child)
			prefix = prefix[:len(prefix)-1]
		})
	}
	walk(t.RootNodeIndex())
	return words
}
