// Package odds computes exact category probabilities by enumerating every way the
// remaining community cards can be dealt.
package odds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/evaluator"
)

// BoardSize is the number of community cards on a complete board
const BoardSize = 5

// ErrInvalidArgument is returned for malformed engine or calculator calls
var ErrInvalidArgument = errors.New("invalid argument")

// Option configures an Enumerator or Calculator
type Option func(*options)

type options struct {
	workers  int
	logger   *log.Logger
	progress ProgressFunc
}

// ProgressFunc receives the number of board completions evaluated so far and
// the total for the current enumeration. With more than one worker it is called
// from several goroutines.
type ProgressFunc func(done, total uint64)

// WithWorkers splits the top level of the enumeration across n goroutines.
// Values below 2 keep the traversal on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgress reports completed leaves after each top-level branch
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

func newOptions(opts []Option) options {
	o := options{
		workers: 1,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Enumerator visits every combination of missing board cards exactly once and
// counts, per category, the leaves where the category is present.
type Enumerator struct {
	workers  int
	logger   *log.Logger
	progress ProgressFunc
}

// NewEnumerator creates an enumerator
func NewEnumerator(opts ...Option) *Enumerator {
	return newEnumerator(newOptions(opts))
}

func newEnumerator(o options) *Enumerator {
	return &Enumerator{workers: o.workers, logger: o.logger, progress: o.progress}
}

// Enumerate completes board from pool in every distinct way and evaluates each
// requested category against board ∪ pocket at every complete board. All
// categories share one traversal; repeated categories are counted once. Drawing
// k cards from a pool of n visits C(n, k) leaves.
//
// The context is checked at every level above the leaves.
func (e *Enumerator) Enumerate(ctx context.Context, categories []evaluator.Category, board, pocket, pool []deck.Card) (map[evaluator.Category]Tally, error) {
	if len(board) > BoardSize {
		return nil, fmt.Errorf("%w: board has %d cards, at most %d allowed", ErrInvalidArgument, len(board), BoardSize)
	}
	cats, err := uniqueCategories(categories)
	if err != nil {
		return nil, err
	}

	need := BoardSize - len(board)
	e.logger.Debug("Enumerating board completions",
		"board", len(board),
		"pocket", len(pocket),
		"pool", len(pool),
		"leaves", Combinations(len(pool), need),
		"categories", len(cats),
		"workers", e.workers)

	var tallies []Tally
	switch {
	case need == 0:
		tallies, err = walk(ctx, cats, board, pocket, pool)
		e.report(1, 1)
	case e.workers > 1:
		tallies, err = e.walkParallel(ctx, cats, board, pocket, pool)
	case e.progress != nil:
		tallies, err = e.walkTop(ctx, cats, board, pocket, pool)
	default:
		tallies, err = walk(ctx, cats, board, pocket, pool)
	}
	if err != nil {
		return nil, err
	}

	result := make(map[evaluator.Category]Tally, len(cats))
	for i, c := range cats {
		result[c] = tallies[i]
	}
	return result, nil
}

// walk returns one tally per category, aligned with cats. The returned slice is
// owned by the caller.
func walk(ctx context.Context, cats []evaluator.Category, board, pocket, pool []deck.Card) ([]Tally, error) {
	tallies := make([]Tally, len(cats))

	if len(board) == BoardSize {
		hand := make([]deck.Card, 0, len(board)+len(pocket))
		hand = append(hand, board...)
		hand = append(hand, pocket...)
		for i, c := range cats {
			tallies[i].Record(evaluator.Check(c, hand))
		}
		return tallies, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// pool[i+1:] drops every candidate already tried at this level, so each
	// combination is reached through exactly one ordering.
	for i, card := range pool {
		branch, err := walk(ctx, cats, extend(board, card), pocket, pool[i+1:])
		if err != nil {
			return nil, err
		}
		merge(tallies, branch)
	}
	return tallies, nil
}

// walkTop is walk with a progress report after every top-level branch
func (e *Enumerator) walkTop(ctx context.Context, cats []evaluator.Category, board, pocket, pool []deck.Card) ([]Tally, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	need := BoardSize - len(board)
	total := Combinations(len(pool), need)
	var done uint64

	tallies := make([]Tally, len(cats))
	for i, card := range pool {
		branch, err := walk(ctx, cats, extend(board, card), pocket, pool[i+1:])
		if err != nil {
			return nil, err
		}
		merge(tallies, branch)
		done += Combinations(len(pool)-i-1, need-1)
		e.report(done, total)
	}
	return tallies, nil
}

// walkParallel runs each top-level branch as its own task. Every task writes only
// its own slot; slots are merged after all tasks finish.
func (e *Enumerator) walkParallel(ctx context.Context, cats []evaluator.Category, board, pocket, pool []deck.Card) ([]Tally, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	need := BoardSize - len(board)
	total := Combinations(len(pool), need)
	var done atomic.Uint64

	branches := make([][]Tally, len(pool))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, card := range pool {
		g.Go(func() error {
			branch, err := walk(gctx, cats, extend(board, card), pocket, pool[i+1:])
			if err != nil {
				return err
			}
			branches[i] = branch
			e.report(done.Add(Combinations(len(pool)-i-1, need-1)), total)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	tallies := make([]Tally, len(cats))
	for _, branch := range branches {
		merge(tallies, branch)
	}
	return tallies, nil
}

func (e *Enumerator) report(done, total uint64) {
	if e.progress != nil {
		e.progress(done, total)
	}
}

func extend(board []deck.Card, card deck.Card) []deck.Card {
	next := make([]deck.Card, len(board)+1)
	copy(next, board)
	next[len(board)] = card
	return next
}

func merge(dst, src []Tally) {
	for i := range src {
		dst[i] = dst[i].Add(src[i])
	}
}

func uniqueCategories(categories []evaluator.Category) ([]evaluator.Category, error) {
	cats := make([]evaluator.Category, 0, len(categories))
	seen := make(map[evaluator.Category]bool, len(categories))
	for _, c := range categories {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: unknown category %d", ErrInvalidArgument, int(c))
		}
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	return cats, nil
}
