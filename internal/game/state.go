package game

import (
	"fmt"
	"strings"

	"github.com/lox/pokerodds/internal/deck"
)

// MaxPlayers is the number of seats in a game state
const MaxPlayers = 10

// Street identifies how far the community cards have been dealt
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
)

// String returns the street name
func (s Street) String() string {
	switch s {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Board holds the community cards: 0, 3, 4 or 5 of them
type Board []deck.Card

// Street returns the street implied by the number of board cards
func (b Board) Street() (Street, bool) {
	switch len(b) {
	case 0:
		return PreFlop, true
	case 3:
		return Flop, true
	case 4:
		return Turn, true
	case 5:
		return River, true
	default:
		return 0, false
	}
}

// String returns the board in input notation
func (b Board) String() string {
	return notation(b)
}

// Pocket holds a player's hole cards: none when unknown, otherwise two
type Pocket []deck.Card

// Known reports whether the pocket holds two cards
func (p Pocket) Known() bool {
	return len(p) == 2
}

// String returns the pocket in input notation
func (p Pocket) String() string {
	return notation(p)
}

// State is a validated snapshot of a hand: the board and up to ten pockets, with
// no card appearing twice.
type State struct {
	Board   Board
	Pockets [MaxPlayers]Pocket
}

// NewState validates and assembles a game state. Pockets fill seats from index 0.
func NewState(board Board, pockets ...Pocket) (*State, error) {
	if _, ok := board.Street(); !ok {
		return nil, &FormatError{Kind: BoardFormat, Input: board.String(),
			Reason: fmt.Sprintf("a board holds 0, 3, 4 or 5 cards, got %d", len(board))}
	}
	if len(pockets) > MaxPlayers {
		return nil, &FormatError{Kind: GameStateFormat,
			Reason: fmt.Sprintf("at most %d pockets are allowed, got %d", MaxPlayers, len(pockets))}
	}

	state := &State{Board: board}
	for i, pocket := range pockets {
		if len(pocket) != 0 && len(pocket) != 2 {
			return nil, &FormatError{Kind: PocketFormat, Input: pocket.String(),
				Reason: fmt.Sprintf("a pocket holds 0 or 2 cards, got %d", len(pocket))}
		}
		state.Pockets[i] = pocket
	}

	var seen deck.CardSet
	for _, card := range state.Dealt() {
		if seen.Contains(card) {
			return nil, &FormatError{Kind: GameStateFormat, Input: card.Notation(),
				Reason: "card is dealt more than once"}
		}
		seen.Add(card)
	}

	return state, nil
}

// Dealt returns every card on the board and in any pocket
func (s *State) Dealt() []deck.Card {
	cards := make([]deck.Card, 0, len(s.Board)+2*MaxPlayers)
	cards = append(cards, s.Board...)
	for _, pocket := range s.Pockets {
		cards = append(cards, pocket...)
	}
	return cards
}

// Seated returns the indices of players whose pocket is known
func (s *State) Seated() []int {
	var seats []int
	for i, pocket := range s.Pockets {
		if pocket.Known() {
			seats = append(seats, i)
		}
	}
	return seats
}

func notation(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.Notation()
	}
	return strings.Join(parts, " ")
}
