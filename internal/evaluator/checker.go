// Package evaluator decides which hand categories are present in a set of cards.
//
// Every predicate is pure: inputs are never modified, and the "remove a group then
// search again" steps of Two Pair and Full House work on fresh slices.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/pokerodds/internal/deck"
)

// ErrInvalidArgument is returned for calls that break a predicate's contract
var ErrInvalidArgument = errors.New("invalid argument")

const (
	twoPairSize  = 4
	fullHouseMin = 5
	straightSize = 5
	flushSize    = 5
)

// Check reports whether category c is present in cards.
func Check(c Category, cards []deck.Card) bool {
	switch c {
	case Pair:
		return HasPair(cards)
	case TwoPair:
		return HasTwoPair(cards)
	case Trips:
		return HasTrips(cards)
	case Straight:
		return HasStraight(cards)
	case Flush:
		return HasFlush(cards)
	case FullHouse:
		return HasFullHouse(cards)
	case Quads:
		return HasQuads(cards)
	case StraightFlush:
		return HasStraightFlush(cards)
	case RoyalFlush:
		return HasRoyalFlush(cards)
	default:
		return false
	}
}

// Classify evaluates all nine categories against cards
func Classify(cards []deck.Card) map[Category]bool {
	result := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		result[c] = Check(c, cards)
	}
	return result
}

// HasNOfAKind reports whether at least n cards share a rank. n must be positive.
func HasNOfAKind(cards []deck.Card, n int) (bool, error) {
	if n <= 0 {
		return false, fmt.Errorf("%w: n of a kind needs a positive n, got %d", ErrInvalidArgument, n)
	}
	_, ok := findRank(cards, n)
	return ok, nil
}

// HasPair reports whether two cards share a rank
func HasPair(cards []deck.Card) bool {
	_, ok := findRank(cards, 2)
	return ok
}

// HasTrips reports whether three cards share a rank
func HasTrips(cards []deck.Card) bool {
	_, ok := findRank(cards, 3)
	return ok
}

// HasQuads reports whether four cards share a rank
func HasQuads(cards []deck.Card) bool {
	_, ok := findRank(cards, 4)
	return ok
}

// HasFlush reports whether five cards share a suit
func HasFlush(cards []deck.Card) bool {
	var counts [4]int
	for _, card := range cards {
		counts[card.Suit]++
		if counts[card.Suit] >= flushSize {
			return true
		}
	}
	return false
}

// HasTwoPair reports whether two different ranks each hold at least two cards.
// Three or four cards of one rank still count as a single pair.
func HasTwoPair(cards []deck.Card) bool {
	if len(cards) < twoPairSize {
		return false
	}
	first, ok := findRank(cards, 2)
	if !ok {
		return false
	}
	_, ok = findRank(withoutRank(cards, first), 2)
	return ok
}

// HasFullHouse reports whether one rank holds three cards and another rank holds two
func HasFullHouse(cards []deck.Card) bool {
	if len(cards) < fullHouseMin {
		return false
	}
	trips, ok := findRank(cards, 3)
	if !ok {
		return false
	}
	_, ok = findRank(withoutRank(cards, trips), 2)
	return ok
}

// HasStraight reports whether five distinct ranks form a consecutive run. The Ace
// plays both below the Two and above the King.
func HasStraight(cards []deck.Card) bool {
	if len(cards) < straightSize {
		return false
	}

	ranks := distinctRanks(cards)
	run := 0
	var prev deck.Rank
	for i, rank := range ranks {
		switch {
		case i == 0:
			run = 1
		case adjacent(rank, prev):
			run++
			if run == straightSize {
				return true
			}
		case rank != prev:
			run = 1
		}
		prev = rank
	}
	return false
}

// HasStraightFlush reports whether a straight exists within a single suit
func HasStraightFlush(cards []deck.Card) bool {
	if len(cards) < straightSize {
		return false
	}
	for _, suited := range groupBySuit(cards) {
		if len(suited) >= straightSize && HasStraight(suited) {
			return true
		}
	}
	return false
}

// HasRoyalFlush reports whether Ten through Ace of one suit are present
func HasRoyalFlush(cards []deck.Card) bool {
	broadway := make([]deck.Card, 0, len(cards))
	for _, card := range cards {
		if card.Rank.AceHigh() >= deck.Ten.AceHigh() {
			broadway = append(broadway, card)
		}
	}
	return HasStraightFlush(broadway)
}

// findRank returns the highest rank holding at least n cards
func findRank(cards []deck.Card, n int) (deck.Rank, bool) {
	var counts [deck.Ace + 1]int
	for _, card := range cards {
		counts[card.Rank]++
	}
	for rank := deck.Ace; rank >= deck.Two; rank-- {
		if counts[rank] >= n {
			return rank, true
		}
	}
	return 0, false
}

// withoutRank returns a new slice holding every card not of the given rank
func withoutRank(cards []deck.Card, rank deck.Rank) []deck.Card {
	rest := make([]deck.Card, 0, len(cards))
	for _, card := range cards {
		if card.Rank != rank {
			rest = append(rest, card)
		}
	}
	return rest
}

func groupBySuit(cards []deck.Card) [4][]deck.Card {
	var groups [4][]deck.Card
	for _, card := range cards {
		groups[card.Suit] = append(groups[card.Suit], card)
	}
	return groups
}

// distinctRanks returns each rank once in ascending order. An Ace is listed twice:
// first in its ace-low position and again in its ace-high position.
func distinctRanks(cards []deck.Card) []deck.Rank {
	var present [deck.Ace + 1]bool
	for _, card := range cards {
		present[card.Rank] = true
	}

	ranks := make([]deck.Rank, 0, 14)
	if present[deck.Ace] {
		ranks = append(ranks, deck.Ace)
	}
	for rank := deck.Two; rank <= deck.Ace; rank++ {
		if present[rank] {
			ranks = append(ranks, rank)
		}
	}
	return ranks
}

// adjacent reports whether two ranks are neighbours under either Ace projection
func adjacent(a, b deck.Rank) bool {
	return min(abs(a.AceLow()-b.AceLow()), abs(a.AceHigh()-b.AceHigh())) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
