package cross_set

import (
	"sync"

	"github.com/cespare/xxhash"
	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/rs/zerolog/log"

	"github.com/domino14/feudsolver/tilemapping"
)

// Cache is an LRU cache of perpendicular patterns to the letters that
// complete them. It is safe for concurrent use. One cache must only ever be
// used with one trie.
type Cache struct {
	mux    sync.Mutex
	lru    *simplelru.LRU
	hits   int
	misses int
}

type cacheEntry struct {
	pattern string
	set     tilemapping.LetterSet
}

// NewCache returns a cache holding up to size patterns.
func NewCache(size int) (*Cache, error) {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: lru}, nil
}

// pattern encodes the labels of prefix and suffix with a 0 byte between
// them; 0 is never a label.
func pattern(prefix, suffix tilemapping.Word) []byte {
	b := make([]byte, 0, len(prefix)+len(suffix)+1)
	for _, t := range prefix {
		b = append(b, t.Label())
	}
	b = append(b, 0)
	for _, t := range suffix {
		b = append(b, t.Label())
	}
	return b
}

// Lookup returns the letter set for the pattern prefix?suffix. If it is not
// cached, fetch is called to compute it, and the result is stored.
func (c *Cache) Lookup(prefix, suffix tilemapping.Word,
	fetch func(prefix, suffix tilemapping.Word) tilemapping.LetterSet) tilemapping.LetterSet {

	p := pattern(prefix, suffix)
	key := xxhash.Sum64(p)
	c.mux.Lock()
	defer c.mux.Unlock()
	if v, ok := c.lru.Get(key); ok {
		e := v.(cacheEntry)
		// Hash collisions are rare, but the set must be exact.
		if e.pattern == string(p) {
			c.hits++
			return e.set
		}
	}
	c.misses++
	set := fetch(prefix, suffix)
	c.lru.Add(key, cacheEntry{pattern: string(p), set: set})
	return set
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.lru.Len()
}

// Stats returns the number of hits and misses so far.
func (c *Cache) Stats() (int, int) {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.hits, c.misses
}

// LogStats logs the hit rate at debug level.
func (c *Cache) LogStats() {
	hits, misses := c.Stats()
	log.Debug().Int("hits", hits).Int("misses", misses).Int("size", c.Len()).
		Msg("cross-set-cache-stats")
}
