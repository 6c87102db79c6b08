// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
)

var (
	// Players
	firstPlayer  = flag.String("first", config.KindHuman, "First player: human, random, minimax, alphabeta")
	secondPlayer = flag.String("second", config.KindAlphaBeta, "Second player: human, random, minimax, alphabeta")
	depth        = flag.Int("depth", config.DefaultDepth, "Search depth in plies for both players (1-6)")
	firstDepth   = flag.Int("first-depth", 0, "Search depth for First (overrides -depth)")
	secondDepth  = flag.Int("second-depth", 0, "Search depth for Second (overrides -depth)")

	// Game setup
	layout    = flag.String("layout", chess.StandardLayout, "Starting layout, optionally followed by ' w' or ' b'")
	boardSize = flag.Int("size", chess.StandardSize, "Board size (layout must fit)")
	maxPlies  = flag.Int("maxply", 0, "Stop each game after N plies (0 = no limit)")
	numGames  = flag.Int("games", 1, "Number of games to play")
	seed      = flag.Uint64("seed", 0, "Random seed for reproducible games (0 = random)")
	workers   = flag.Int("workers", 1, "Goroutines evaluating root moves in parallel")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output finished games in JSON format")
	colorMode    = flag.String("color", "auto", "Coloured board: auto, always, never")
	noBoard      = flag.Bool("noboard", false, "Don't print the board after each move")
	noCoords     = flag.Bool("nocoords", false, "Don't label ranks and files")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose   = flag.Bool("v", false, "Log search statistics for every move")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags transfers command-line flags into the config.
func applyFlags(cfg *config.Config, stdoutIsTerminal bool) error {
	applyPlayerFlags(cfg)
	applyGameFlags(cfg)
	if err := applyOutputFlags(cfg, stdoutIsTerminal); err != nil {
		return err
	}
	applyVerbosityFlags(cfg)
	return nil
}

func applyPlayerFlags(cfg *config.Config) {
	cfg.First = config.PlayerConfig{Kind: *firstPlayer, Depth: pickDepth(*firstDepth, *depth)}
	cfg.Second = config.PlayerConfig{Kind: *secondPlayer, Depth: pickDepth(*secondDepth, *depth)}
}

// pickDepth prefers a per-side depth when one was given.
func pickDepth(side, shared int) int {
	if side != 0 {
		return side
	}
	return shared
}

func applyGameFlags(cfg *config.Config) {
	cfg.Game.Layout = *layout
	cfg.Game.Size = *boardSize
	cfg.Game.MaxPlies = *maxPlies
	cfg.Search.Seed = *seed
	cfg.Search.Workers = *workers
}

func applyOutputFlags(cfg *config.Config, stdoutIsTerminal bool) error {
	useColor, err := colorEnabled(*colorMode, stdoutIsTerminal && *outputFile == "")
	if err != nil {
		return err
	}
	cfg.Output.Color = useColor
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard && !*jsonOutput
	cfg.Output.ShowCoordinates = !*noCoords
	return nil
}

// colorEnabled resolves the -color mode. "auto" colours only a terminal.
func colorEnabled(mode string, terminal bool) (bool, error) {
	switch mode {
	case "auto":
		return terminal, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid -color %q: want auto, always or never", mode)
}

func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	default:
		cfg.Verbosity = 1
	}
}
