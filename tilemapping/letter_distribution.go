package tilemapping

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/domino14/feudsolver/config"
)

//go:embed distributions/*.yaml
var builtinDistributions embed.FS

type distributionEntry struct {
	Letter string `yaml:"letter"`
	Count  uint8  `yaml:"count"`
	Score  int    `yaml:"score"`
}

type distributionFile struct {
	Name    string              `yaml:"name"`
	Blank   distributionEntry   `yaml:"blank"`
	Letters []distributionEntry `yaml:"letters"`
}

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	tilemapping  *TileMapping
	distribution []uint8
	scores       []int
	numLetters   uint
	Name         string
}

// ScanLetterDistribution reads a letter distribution in YAML form:
//
//	name: english
//	blank: {count: 2, score: 0}
//	letters:
//	  - {letter: a, count: 10, score: 1}
//
// Letters are labeled in the order they are listed.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	var df distributionFile
	if err := yaml.NewDecoder(data).Decode(&df); err != nil {
		return nil, fmt.Errorf("reading letter distribution: %w", err)
	}
	letters := make([]rune, 0, len(df.Letters))
	for _, e := range df.Letters {
		rs := []rune(norm.NFC.String(e.Letter))
		if len(rs) != 1 {
			return nil, fmt.Errorf("%w: distribution %v letter %q is not a single symbol",
				ErrInvalidSymbol, df.Name, e.Letter)
		}
		letters = append(letters, rs[0])
	}
	tm, err := NewTileMapping(df.Name, letters)
	if err != nil {
		return nil, err
	}
	dist := make([]uint8, len(df.Letters)+1)
	scores := make([]int, len(df.Letters)+1)
	dist[0] = df.Blank.Count
	scores[0] = df.Blank.Score
	for i, e := range df.Letters {
		dist[i+1] = e.Count
		scores[i+1] = e.Score
	}
	return newLetterDistribution(df.Name, tm, dist, scores), nil
}

func newLetterDistribution(name string, tm *TileMapping, dist []uint8, scores []int) *LetterDistribution {
	numTotalLetters := uint(0)
	for _, v := range dist {
		numTotalLetters += uint(v)
	}
	// Note: numLetters includes the blanks.
	return &LetterDistribution{
		tilemapping:  tm,
		distribution: dist,
		scores:       scores,
		numLetters:   numTotalLetters,
		Name:         name,
	}
}

// Score gives the score of the given tile. Blanks, designated or not, score
// the blank's value. This is used by the scorer to look up values without
// a map.
func (ld *LetterDistribution) Score(t Tile) int {
	if t.IsBlank() {
		return ld.scores[0]
	}
	label := int(t.Label())
	if label >= len(ld.scores) {
		return 0
	}
	return ld.scores[label]
}

func (ld *LetterDistribution) TileMapping() *TileMapping {
	return ld.tilemapping
}

// WordScore returns the face value of the tiles in w.
func (ld *LetterDistribution) WordScore(w Word) int {
	score := 0
	for _, t := range w {
		score += ld.Score(t)
	}
	return score
}

// Distribution returns the tile counts, indexed by label. Index 0 holds the
// blanks.
func (ld *LetterDistribution) Distribution() []uint8 {
	return ld.distribution
}

// NumTotalLetters returns the number of tiles in a full set, blanks included.
func (ld *LetterDistribution) NumTotalLetters() int {
	return int(ld.numLetters)
}

// EnglishLetterDistribution returns the English letter distribution.
func EnglishLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return NamedLetterDistribution(cfg, "english")
}

// NamedLetterDistribution loads a distribution by name. A file named
// <name>.yaml under <data-path>/letterdistributions takes precedence over
// the built-in distributions (english, dutch, swedish).
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	if cfg != nil {
		path := filepath.Join(cfg.GetString(config.ConfigDataPath), "letterdistributions", name+".yaml")
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			return ScanLetterDistribution(f)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	f, err := builtinDistributions.Open("distributions/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("letter distribution %v not found: %w", name, err)
	}
	defer f.Close()
	return ScanLetterDistribution(f)
}
