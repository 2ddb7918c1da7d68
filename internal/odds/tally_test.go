package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	var tally Tally
	assert.Equal(t, uint64(0), tally.Total())
	assert.Equal(t, 0.0, tally.WinRatio())
	assert.Equal(t, 0.0, tally.LossRatio())

	tally.Record(true)
	tally.Record(false)
	tally.Record(false)
	tally.Record(false)

	assert.Equal(t, Tally{Wins: 1, Losses: 3}, tally)
	assert.Equal(t, uint64(4), tally.Total())
	assert.Equal(t, 0.25, tally.WinRatio())
	assert.Equal(t, 0.75, tally.LossRatio())
}

func TestTallyAdd(t *testing.T) {
	a := Tally{Wins: 2, Losses: 5}
	b := Tally{Wins: 7, Losses: 1}

	assert.Equal(t, Tally{Wins: 9, Losses: 6}, a.Add(b))
	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, a.Add(b).Add(Tally{Wins: 1}), a.Add(b.Add(Tally{Wins: 1})))
	assert.Equal(t, Tally{Wins: 2, Losses: 5}, a, "operands are not modified")
}

func TestCombinations(t *testing.T) {
	tests := []struct {
		n, k int
		want uint64
	}{
		{10, 2, 45},
		{46, 1, 46},
		{47, 2, 1081},
		{41, 2, 820},
		{50, 5, 2118760},
		{52, 5, 2598960},
		{5, 0, 1},
		{5, 5, 1},
		{3, 5, 0},
		{5, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Combinations(tt.n, tt.k), "C(%d, %d)", tt.n, tt.k)
	}
}
