package evaluator

import (
	"fmt"
	"strings"
)

// Category is a poker hand pattern. Categories are independent predicates over a
// card set, not exclusive ranks: a full house also satisfies Trips and Pair.
type Category int

const (
	Pair Category = iota
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
	RoyalFlush
)

// Categories lists every category from weakest to strongest
var Categories = []Category{Pair, TwoPair, Trips, Straight, Flush, FullHouse, Quads, StraightFlush, RoyalFlush}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case Pair:
		return "Two of a Kind"
	case TwoPair:
		return "Two Pair"
	case Trips:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case Quads:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Key returns the lower-case identifier used in configuration, flags and JSON
func (c Category) Key() string {
	switch c {
	case Pair:
		return "pair"
	case TwoPair:
		return "two_pair"
	case Trips:
		return "trips"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full_house"
	case Quads:
		return "quads"
	case StraightFlush:
		return "straight_flush"
	case RoyalFlush:
		return "royal_flush"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the nine categories
func (c Category) Valid() bool {
	return c >= Pair && c <= RoyalFlush
}

// MarshalText implements encoding.TextMarshaler so categories can key JSON maps
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a category key. Hyphens and case are tolerated, so
// "Full-House" and "full_house" are the same category.
func ParseCategory(s string) (Category, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, c := range Categories {
		if c.Key() == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// ParseCategories resolves a list of category keys, dropping repeats while
// keeping first-seen order.
func ParseCategories(keys []string) ([]Category, error) {
	var out []Category
	seen := make(map[Category]bool, len(keys))
	for _, key := range keys {
		c, err := ParseCategory(key)
		if err != nil {
			return nil, err
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}
