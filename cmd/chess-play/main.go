// chess-play plays chess between any mix of humans, random movers and
// minimax or alpha-beta searchers.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

// run plays the configured games and returns the process exit code.
// Deferred cleanup, such as restoring the terminal after readline, runs
// before the caller exits.
func run() int {
	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chess-play version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg, term.IsTerminal(int(os.Stdout.Fd()))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging and output files
	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	closeOutput, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeOutput()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if *numGames < 1 {
		fmt.Fprintf(os.Stderr, "Error: -games must be at least 1\n")
		return 2
	}

	logger := newLogger(cfg)

	var input game.HumanInput
	if cfg.First.Kind == config.KindHuman || cfg.Second.Kind == config.KindHuman {
		rl, err := newLineReader(term.IsTerminal(int(os.Stdin.Fd())))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
			return 1
		}
		defer rl.Close()
		input = humanInput(rl, os.Stdout, output.BoardStyle{Color: cfg.Output.Color, Coordinates: cfg.Output.ShowCoordinates})
	}

	r := &runner{
		cfg:    cfg,
		input:  input,
		logger: logger,
		writer: newGameWriter(cfg),
	}
	if _, err := r.playGames(*numGames); err != nil {
		logger.Printf("error: %v", err)
		return 1
	}
	return 0
}

// newLogger logs to the configured log stream; silent mode discards.
func newLogger(cfg *config.Config) *log.Logger {
	w := cfg.LogFile
	if cfg.Verbosity == 0 {
		w = io.Discard
	}
	return log.New(w, "chess-play: ", log.LstdFlags)
}

// newGameWriter picks the writer for finished games.
func newGameWriter(cfg *config.Config) output.GameWriter {
	if cfg.Output.JSONFormat {
		if *numGames > 1 {
			return output.NewJSONWriter(cfg.OutputFile)
		}
		return output.NewJSONWriterSingle(cfg.OutputFile)
	}
	return output.NewTextWriter(cfg.OutputFile)
}

// setupLogFile configures the log file based on command-line flags and
// returns a function that closes it.
func setupLogFile(cfg *config.Config) (func(), error) {
	name, flags := *logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY
	if *appendLog != "" {
		name, flags = *appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY
	}
	if name == "" {
		return func() {}, nil
	}

	file, err := os.OpenFile(name, flags, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", name, err)
	}
	cfg.LogFile = file
	return func() { file.Close() }, nil
}

// setupOutputFile configures the output file based on command-line flags
// and returns a function that closes it.
func setupOutputFile(cfg *config.Config) (func(), error) {
	if *outputFile == "" {
		return func() {}, nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.OutputFile = file
	return func() { file.Close() }, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-play [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess between humans, random movers and minimax or alpha-beta searchers.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPlayers (-first, -second):\n")
	fmt.Fprintf(os.Stderr, "  human      moves typed at the prompt (type 'help' there)\n")
	fmt.Fprintf(os.Stderr, "  random     a uniformly random legal move\n")
	fmt.Fprintf(os.Stderr, "  minimax    full-tree minimax to -depth plies\n")
	fmt.Fprintf(os.Stderr, "  alphabeta  alpha-beta search to -depth plies (same choices as minimax, faster)\n")
}
