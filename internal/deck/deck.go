package deck

import "math/bits"

// Size is the number of cards in a standard deck
const Size = 52

// Universe returns all 52 cards in a fixed order (suit-major, ranks ascending).
// Each rank and suit combination appears exactly once.
func Universe() []Card {
	cards := make([]Card, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Undealt returns the universe minus every card in the excluded groups, preserving
// universe order.
func Undealt(excluded ...[]Card) []Card {
	var used CardSet
	for _, group := range excluded {
		for _, card := range group {
			used.Add(card)
		}
	}

	available := make([]Card, 0, Size-used.Len())
	for _, card := range Universe() {
		if !used.Contains(card) {
			available = append(available, card)
		}
	}
	return available
}

// CardSet represents a set of cards using a bitset for fast operations
// Each card maps to a bit: index = (rank-2)*4 + suit
type CardSet uint64

// cardIndex converts a card to its bit index (0-51)
func cardIndex(card Card) int {
	return int(card.Rank-Two)*4 + int(card.Suit)
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}
