package trie

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/feudsolver/cache"
	"github.com/domino14/feudsolver/config"
	"github.com/domino14/feudsolver/tilemapping"
)

const (
	CacheKeyPrefix = "trie:"
)

// CacheLoadFunc is the function that loads a trie into the global cache.
// The key is CacheKeyPrefix followed by the distribution name, a colon and
// the lexicon name.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	ldName, lexiconName, found := strings.Cut(strings.TrimPrefix(key, CacheKeyPrefix), ":")
	if !found {
		return nil, fmt.Errorf("malformed trie cache key %q", key)
	}
	ld, err := tilemapping.NamedLetterDistribution(cfg, ldName)
	if err != nil {
		return nil, err
	}
	filename, err := lexiconFile(cfg, lexiconName)
	if err != nil {
		return nil, err
	}
	return LoadFile(filename, ld.TileMapping())
}

// lexiconFile finds <name>.txt or <name>.txt.gz under the lexicon path.
func lexiconFile(cfg *config.Config, name string) (string, error) {
	base := filepath.Join(cfg.GetString(config.ConfigLexiconPath), name)
	for _, fn := range []string{base + ".txt", base + ".txt.gz", base} {
		if _, err := os.Stat(fn); err == nil {
			return fn, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("lexicon %v not found under %v: %w",
		name, cfg.GetString(config.ConfigLexiconPath), fs.ErrNotExist)
}

// LoadFile loads a word list file into a trie. The trie is named after the
// file.
func LoadFile(filename string, tm *tilemapping.TileMapping) (*Trie, error) {
	log.Debug().Msgf("Loading %v ...", filename)
	file, err := cache.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := Load(file, tm)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, ".gz")
	t.name = strings.TrimSuffix(name, ".txt")
	return t, nil
}

// Get loads a named lexicon, in the alphabet of the named letter
// distribution, from the cache or from a file.
func Get(cfg *config.Config, ldName, lexiconName string) (*Trie, error) {
	key := CacheKeyPrefix + strings.ToLower(ldName) + ":" + lexiconName
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Trie)
	if !ok {
		return nil, errors.New("could not read trie from file")
	}
	return ret, nil
}
