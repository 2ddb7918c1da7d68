package odds

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/internal/evaluator"
	"github.com/lox/pokerodds/internal/game"
)

func newCalculator(t *testing.T, input string, opts ...Option) *Calculator {
	t.Helper()
	state, err := game.Parse(input)
	require.NoError(t, err)
	return NewCalculator(state, opts...)
}

func TestProbabilityScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		category evaluator.Category
		player   int
		want     float64
	}{
		{"river without pair", "Ah Kh Qh Jh Th\n2d 7c", evaluator.Pair, 0, 0},
		{"river royal flush", "Ah Kh Qh Jh Th\n2d 7c", evaluator.RoyalFlush, 0, 1},
		{"river board pair", "Ah Kh Qh Jh Jd\n2d 7c", evaluator.Pair, 0, 1},
		{"turn pair", "Ah Kh Qh Jh\n2d 7c", evaluator.Pair, 0, 18.0 / 46.0},
		{"turn community pair", "Ah Kh Qh Jh\n2d 7c", evaluator.Pair, 5, 12.0 / 46.0},
		{"flop pair", "Ah Kh Qh\n2d 7c", evaluator.Pair, 0, 633.0 / 1081.0},
		{"flop pair with four players", "Ah Kh Qh\n2d 7c\n7h 7d\nAd Kc\n8c 8d", evaluator.Pair, 0, 428.0 / 820.0},
		{"turn busted two pair", "As Kc Qh 9h\n5s 2c", evaluator.TwoPair, 0, 0},
		{"turn two pair draw", "As Kc Qh 9h\n5s 5c", evaluator.TwoPair, 0, 12.0 / 46.0},
		{"turn flush draw", "Ah Kh Qh Jh\n2d 7c", evaluator.Flush, 0, 9.0 / 46.0},
		{"turn royal draw", "Ah Kh Qh Jh\n2d 7c", evaluator.RoyalFlush, 0, 1.0 / 46.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := newCalculator(t, tt.input)

			got, err := calc.Probability(context.Background(), tt.category, tt.player)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCompleteBoardIsDeterministic(t *testing.T) {
	calc := newCalculator(t, "9c 9d 4h 4s Kd\n9s 2h\n\n3c 3d")

	for _, player := range []int{0, 1, 2} {
		probs, err := calc.AllProbabilities(context.Background(), player)
		require.NoError(t, err)
		require.Len(t, probs, len(evaluator.Categories))
		for c, p := range probs {
			assert.Contains(t, []float64{0, 1}, p, "player %d %s", player, c)
		}
	}

	probs, err := calc.AllProbabilities(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, probs[evaluator.FullHouse])
	assert.Equal(t, 1.0, probs[evaluator.TwoPair])
	assert.Equal(t, 1.0, probs[evaluator.Trips])
	assert.Equal(t, 0.0, probs[evaluator.Quads])
}

func TestProbabilitiesReturnsRequestedCategories(t *testing.T) {
	calc := newCalculator(t, "Qs Js 8h\nAs Ks")

	all, err := calc.AllProbabilities(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, len(evaluator.Categories))
	for _, c := range evaluator.Categories {
		assert.Contains(t, all, c)
		assert.GreaterOrEqual(t, all[c], 0.0)
		assert.LessOrEqual(t, all[c], 1.0)
	}
	// Non-exclusive categories: any full house also counts as trips and a pair.
	assert.GreaterOrEqual(t, all[evaluator.Trips], all[evaluator.FullHouse])
	assert.GreaterOrEqual(t, all[evaluator.Pair], all[evaluator.TwoPair])
	assert.GreaterOrEqual(t, all[evaluator.StraightFlush], all[evaluator.RoyalFlush])
	assert.Greater(t, all[evaluator.RoyalFlush], 0.0)

	some, err := calc.Probabilities(context.Background(), []evaluator.Category{evaluator.Flush, evaluator.Straight}, 0)
	require.NoError(t, err)
	assert.Len(t, some, 2)
	assert.Equal(t, all[evaluator.Flush], some[evaluator.Flush])
	assert.Equal(t, all[evaluator.Straight], some[evaluator.Straight])
}

func TestPlayerIndexValidation(t *testing.T) {
	calc := newCalculator(t, "Ah Kh Qh Jh Th\n2d 7c")

	for _, player := range []int{-1, game.MaxPlayers, 42} {
		_, err := calc.Probability(context.Background(), evaluator.Pair, player)
		assert.ErrorIs(t, err, ErrInvalidArgument, "player %d", player)
	}

	for player := 1; player < game.MaxPlayers; player++ {
		_, err := calc.Probability(context.Background(), evaluator.Pair, player)
		assert.NoError(t, err, "player %d", player)
	}
}

func TestTalliesUsePoolWithoutAnyPocket(t *testing.T) {
	calc := newCalculator(t, "Ah Kh Qh\n2d 7c\n7h 7d\nAd Kc\n8c 8d")

	tallies, err := calc.Tallies(context.Background(), []evaluator.Category{evaluator.Pair}, 0)
	require.NoError(t, err)
	assert.Equal(t, Combinations(41, 2), tallies[evaluator.Pair].Total())
	assert.Equal(t, uint64(428), tallies[evaluator.Pair].Wins)
}

func TestPreflopProbability(t *testing.T) {
	if testing.Short() {
		t.Skip("full pre-flop enumeration")
	}

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	calc := newCalculator(t, "\n2d 7c", WithWorkers(8), WithLogger(logger))

	tallies, err := calc.Tallies(context.Background(), []evaluator.Category{evaluator.Pair}, 0)
	require.NoError(t, err)
	assert.Equal(t, Combinations(50, 5), tallies[evaluator.Pair].Total())

	p := tallies[evaluator.Pair].WinRatio()
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}
