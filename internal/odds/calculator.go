package odds

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/evaluator"
	"github.com/lox/pokerodds/internal/game"
)

// Calculator answers per-player category probabilities for one game state.
type Calculator struct {
	state  *game.State
	enum   *Enumerator
	logger *log.Logger
}

// NewCalculator creates a calculator over a validated game state
func NewCalculator(state *game.State, opts ...Option) *Calculator {
	o := newOptions(opts)
	return &Calculator{
		state:  state,
		enum:   newEnumerator(o),
		logger: o.logger,
	}
}

// Tallies enumerates every completion of the board for the given player and
// returns the raw win/loss counts per requested category.
//
// The undealt pool excludes the board and every player's pocket. A player without
// a known pocket is evaluated on the board alone.
func (c *Calculator) Tallies(ctx context.Context, categories []evaluator.Category, player int) (map[evaluator.Category]Tally, error) {
	if player < 0 || player >= game.MaxPlayers {
		return nil, fmt.Errorf("%w: player index %d not in range [0, %d)", ErrInvalidArgument, player, game.MaxPlayers)
	}

	pocket := c.state.Pockets[player]
	pool := deck.Undealt(c.state.Dealt())

	c.logger.Debug("Calculating probabilities",
		"player", player+1,
		"board", c.state.Board.String(),
		"pocket", pocket.String(),
		"known", pocket.Known())

	return c.enum.Enumerate(ctx, categories, c.state.Board, pocket, pool)
}

// Probabilities returns wins / total for each requested category. The map holds
// exactly the requested categories.
func (c *Calculator) Probabilities(ctx context.Context, categories []evaluator.Category, player int) (map[evaluator.Category]float64, error) {
	tallies, err := c.Tallies(ctx, categories, player)
	if err != nil {
		return nil, err
	}

	result := make(map[evaluator.Category]float64, len(tallies))
	for category, tally := range tallies {
		result[category] = tally.WinRatio()
	}
	return result, nil
}

// Probability returns the probability of a single category
func (c *Calculator) Probability(ctx context.Context, category evaluator.Category, player int) (float64, error) {
	result, err := c.Probabilities(ctx, []evaluator.Category{category}, player)
	if err != nil {
		return 0, err
	}
	return result[category], nil
}

// AllProbabilities returns the probability of every category in one traversal
func (c *Calculator) AllProbabilities(ctx context.Context, player int) (map[evaluator.Category]float64, error) {
	return c.Probabilities(ctx, evaluator.Categories, player)
}
