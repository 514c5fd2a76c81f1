package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/feudsolver/board"
	"github.com/domino14/feudsolver/cache"
	"github.com/domino14/feudsolver/config"
	"github.com/domino14/feudsolver/move"
	"github.com/domino14/feudsolver/movegen"
	"github.com/domino14/feudsolver/tilemapping"
	"github.com/domino14/feudsolver/trie"
)

const usage = `usage: feudsolver [flags] RACK [BOARDFILE]

RACK is the tiles on the rack, * for a blank. BOARDFILE has one line per
row: lower-case letters, upper-case letters for blanks, . for empty
squares. Without a board file the board is empty.`

func main() {
	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	log.Debug().Msg("Debug logging is on")

	args := cfg.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	moves, b, tm, err := solve(ctx, cfg, args)
	if err != nil {
		log.Fatal().Err(err).Msg("solve-failed")
	}
	fmt.Println(b.ToDisplayText(tm))
	if len(moves) == 0 {
		fmt.Println("No plays.")
		return
	}
	fmt.Println(strings.Join(lo.Map(moves, func(m *move.Move, i int) string {
		return fmt.Sprintf("%3d. %-4s %-17s %4d", i+1, m.BoardCoords(), m.TilesString(), m.Score())
	}), "\n"))
}

func solve(ctx context.Context, cfg *config.Config, args []string) ([]*move.Move, *board.GameBoard,
	*tilemapping.TileMapping, error) {

	ld, err := tilemapping.NamedLetterDistribution(cfg, cfg.GetString(config.ConfigLetterDistribution))
	if err != nil {
		return nil, nil, nil, err
	}
	tm := ld.TileMapping()
	tr, err := trie.Get(cfg, ld.Name, cfg.GetString(config.ConfigLexicon))
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info().Str("lexicon", tr.Name()).Int("words", tr.WordCount()).
		Int("nodes", tr.NodeCount()).Msg("lexicon-loaded")

	layout, err := loadLayout(cfg, cfg.GetString(config.ConfigBoardLayout))
	if err != nil {
		return nil, nil, nil, err
	}
	b := board.MakeBoard(layout)
	if len(args) > 1 {
		f, err := cache.Open(args[1])
		if err != nil {
			return nil, nil, nil, err
		}
		defer f.Close()
		if _, err := b.SetFromReader(f, tm); err != nil {
			return nil, nil, nil, fmt.Errorf("%v: %w", args[1], err)
		}
	}

	rack, err := tilemapping.RackFromString(args[0], tm)
	if err != nil {
		return nil, nil, nil, err
	}
	gen, err := movegen.NewGenerator(cfg, tr, ld)
	if err != nil {
		return nil, nil, nil, err
	}
	start := time.Now()
	moves, err := gen.BestMoves(ctx, b, rack, cfg.GetInt(config.ConfigNumPlays))
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info().Str("rack", rack.String()).Int("plays", len(moves)).
		Dur("elapsed", time.Since(start)).Msg("generated")
	return moves, b, tm, nil
}

// loadLayout returns a built-in layout, or reads one from a file: either
// the path given or <data-path>/layouts/<name>.
func loadLayout(cfg *config.Config, name string) (*board.Layout, error) {
	if l, err := board.NamedLayout(name); err == nil {
		return l, nil
	}
	fn := name
	if _, err := os.Stat(fn); err != nil {
		fn = filepath.Join(cfg.GetString(config.ConfigDataPath), "layouts", name)
	}
	f, err := cache.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("layout %v: %w", name, err)
	}
	defer f.Close()
	return board.ReadLayout(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)), f)
}
