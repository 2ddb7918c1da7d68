package odds

// Tally counts leaves where a category was present (wins) or absent (losses).
type Tally struct {
	Wins   uint64
	Losses uint64
}

// Record adds one leaf outcome
func (t *Tally) Record(win bool) {
	if win {
		t.Wins++
	} else {
		t.Losses++
	}
}

// Add returns the pointwise sum of two tallies
func (t Tally) Add(other Tally) Tally {
	return Tally{Wins: t.Wins + other.Wins, Losses: t.Losses + other.Losses}
}

// Total returns wins plus losses
func (t Tally) Total() uint64 {
	return t.Wins + t.Losses
}

// WinRatio returns wins / total, or 0 for an empty tally
func (t Tally) WinRatio() float64 {
	if t.Total() == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Total())
}

// LossRatio returns losses / total, or 0 for an empty tally
func (t Tally) LossRatio() float64 {
	if t.Total() == 0 {
		return 0
	}
	return float64(t.Losses) / float64(t.Total())
}

// Combinations returns the binomial coefficient C(n, k), the number of leaves an
// enumeration visits when k board cards are drawn from a pool of n.
func Combinations(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := uint64(1)
	for i := 1; i <= k; i++ {
		result = result * uint64(n-k+i) / uint64(i)
	}
	return result
}
