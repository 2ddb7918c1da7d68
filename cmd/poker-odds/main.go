package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/fileutil"
	"github.com/lox/pokerodds/internal/game"
	"github.com/lox/pokerodds/internal/odds"
	"github.com/lox/pokerodds/internal/report"
)

var version = "dev"

// Exit codes
const (
	exitOK = iota
	exitBadArguments
	exitBadInput
	exitUnreadable
	exitAborted
)

type CLI struct {
	File string `arg:"" help:"Game state file: board on the first line, one pocket per following line ('-' reads stdin)"`

	Config   string           `short:"c" help:"HCL configuration file" default:"poker-odds.hcl"`
	LogLevel string           `short:"l" help:"Log level (debug, info, warn, error)"`
	Workers  int              `short:"w" help:"Parallel enumeration workers"`
	Category []string         `help:"Category to report, repeatable (pair, two_pair, trips, straight, flush, full_house, quads, straight_flush, royal_flush)" placeholder:"SLUG"`
	Format   string           `help:"Output format (text, json)"`
	Output   string           `short:"o" help:"Write the report to a file instead of stdout"`
	NoColor  bool             `help:"Disable colored output"`
	Progress bool             `help:"Show enumeration progress on stderr"`
	Version  kong.VersionFlag `help:"Print version and exit"`
}

// settings folds command line overrides into the file configuration
func (c *CLI) settings() (*config.Config, error) {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}
	if len(c.Category) > 0 {
		cfg.Categories = c.Category
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.NoColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, quartz.NewReal()))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, clock quartz.Clock) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("poker-odds"),
		kong.Description("Exact Texas Hold'em hand category probabilities for every seated player."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kong.Vars{"version": version},
	)
	if err != nil {
		fmt.Fprintf(stderr, "poker-odds: %v\n", err)
		return exitBadArguments
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "poker-odds: error: %v\n", err)
		fmt.Fprintln(stderr, "Run with --help for usage.")
		return exitBadArguments
	}

	cfg, err := cli.settings()
	if err != nil {
		fmt.Fprintf(stderr, "poker-odds: error: %v\n", err)
		return exitBadArguments
	}

	logger := log.New(stderr)
	level, _ := cfg.Level()
	logger.SetLevel(level)
	logger.Debug("Loaded configuration",
		"file", cli.Config,
		"workers", cfg.Workers,
		"categories", cfg.Categories,
		"format", cfg.Format)

	ctx, stop := withSignals(ctx, logger)
	defer stop()

	input, err := readInput(cli.File, stdin)
	if err != nil {
		logger.Debug("Failed to read input", "error", err)
		fmt.Fprintf(stderr, "File [%s] could not be opened\n", cli.File)
		return exitUnreadable
	}

	state, err := game.Parse(string(input))
	if err != nil {
		logger.Debug("Failed to parse game state", "error", err)
		var formatErr *game.FormatError
		if errors.As(err, &formatErr) && formatErr.Input != "" {
			fmt.Fprintf(stderr, "Input is formatted incorrectly: %s\n", formatErr.Input)
		} else {
			fmt.Fprintln(stderr, "Input is formatted incorrectly")
		}
		return exitBadInput
	}

	street, _ := state.Board.Street()
	seated := state.Seated()
	logger.Info("Parsed game state",
		"board", state.Board.String(),
		"street", street,
		"players", len(seated))

	categories, _ := cfg.ParsedCategories()
	opts := []odds.Option{odds.WithWorkers(cfg.Workers), odds.WithLogger(logger)}
	var display *progressDisplay
	if cli.Progress {
		display = startProgress(ctx, stderr)
		defer display.Stop()
		opts = append(opts, odds.WithProgress(display.Update))
	}
	calc := odds.NewCalculator(state, opts...)
	leaves := odds.Combinations(deck.Size-len(state.Dealt()), odds.BoardSize-len(state.Board))

	result := &report.Report{Board: state.Board}
	for _, seat := range seated {
		if display != nil {
			display.Player(seat)
		}
		start := clock.Now()
		probs, err := calc.Probabilities(ctx, categories, seat)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				fmt.Fprintln(stderr, "Calculation aborted")
				return exitAborted
			}
			logger.Error("Calculation failed", "player", seat+1, "error", err)
			return exitBadArguments
		}
		logger.Info("Calculated probabilities",
			"player", seat+1,
			"completions", leaves,
			"elapsed", clock.Since(start))

		result.Players = append(result.Players, report.PlayerOdds{
			Seat:          seat,
			Pocket:        state.Pockets[seat],
			Probabilities: probs,
		})
	}
	if display != nil {
		display.Stop()
	}
	if len(seated) == 0 {
		logger.Warn("No seated players, nothing to report")
	}

	render := func(w io.Writer, color bool) error {
		if cfg.Format == config.FormatJSON {
			return report.WriteJSON(w, result)
		}
		return report.WriteText(w, result, color)
	}

	if cli.Output != "" {
		err = fileutil.WriteAtomicFunc(cli.Output, 0o644, func(w io.Writer) error {
			return render(w, false)
		})
		if err != nil {
			logger.Error("Failed to write report", "path", cli.Output, "error", err)
			return exitUnreadable
		}
		logger.Info("Wrote report", "path", cli.Output)
		return exitOK
	}

	if err := render(stdout, !cfg.NoColor); err != nil {
		logger.Error("Failed to write report", "error", err)
		return exitBadArguments
	}
	return exitOK
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(stdin); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return os.ReadFile(path)
}
