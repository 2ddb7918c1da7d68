package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses a single card in strict notation: an upper-case rank
// (A, K, Q, J, T, 9-2) followed by a lower-case suit (s, h, d, c).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("card %q must be exactly two characters", s)
	}
	rank, ok := rankFromChar(s[0])
	if !ok {
		return Card{}, fmt.Errorf("card %q: unknown rank '%c'", s, s[0])
	}
	suit, ok := suitFromChar(s[1])
	if !ok {
		return Card{}, fmt.Errorf("card %q: unknown suit '%c'", s, s[1])
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a string of card notation into a slice of cards.
// Format: "AsKsQsJsTs" where each card is [Rank][Suit]; spaces are ignored and
// case is not significant.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, ok := rankFromChar(upper(s[i]))
		if !ok {
			return nil, fmt.Errorf("invalid rank '%c' at position %d", s[i], i)
		}
		suit, ok := suitFromChar(lower(s[i+1]))
		if !ok {
			return nil, fmt.Errorf("invalid suit '%c' at position %d", s[i+1], i+1)
		}
		cards = append(cards, Card{Rank: rank, Suit: suit})
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func rankFromChar(c byte) (Rank, bool) {
	i := strings.IndexByte(rankChars, c)
	if i < 0 {
		return 0, false
	}
	return Two + Rank(i), true
}

func suitFromChar(c byte) (Suit, bool) {
	switch c {
	case 's':
		return Spades, true
	case 'h':
		return Hearts, true
	case 'd':
		return Diamonds, true
	case 'c':
		return Clubs, true
	default:
		return 0, false
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
