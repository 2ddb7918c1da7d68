package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/pokerodds/internal/deck"
)

// Parse builds a State from its text form.
//
// The first line is the board: blank (pre-flop), or 3, 4 or 5 cards. Each of the
// following lines, up to MaxPlayers of them, is a pocket: blank when unknown,
// otherwise 2 cards. Cards are written as a rank (AKQJT98765432) followed by a
// lower-case suit (shdc) and separated by whitespace, e.g. "As 5d 7h".
func Parse(input string) (*State, error) {
	lines := strings.Split(input, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	if len(lines) < 2 {
		return nil, &FormatError{Kind: GameStateFormat, Reason: "at least one pocket line is required"}
	}
	if len(lines)-1 > MaxPlayers {
		return nil, &FormatError{Kind: GameStateFormat, Input: lines[MaxPlayers+1],
			Reason: fmt.Sprintf("at most %d pocket lines are allowed", MaxPlayers)}
	}

	boardCards, err := parseLine(lines[0])
	if err != nil {
		return nil, err
	}
	board := Board(boardCards)
	if _, ok := board.Street(); !ok {
		return nil, &FormatError{Kind: BoardFormat, Input: strings.TrimSpace(lines[0]),
			Reason: fmt.Sprintf("a board holds 0, 3, 4 or 5 cards, got %d", len(board))}
	}

	pockets := make([]Pocket, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cards, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		if len(cards) != 0 && len(cards) != 2 {
			return nil, &FormatError{Kind: PocketFormat, Input: strings.TrimSpace(line),
				Reason: fmt.Sprintf("a pocket holds 0 or 2 cards, got %d", len(cards))}
		}
		pockets = append(pockets, Pocket(cards))
	}

	return NewState(board, pockets...)
}

// ParseReader reads all of r and parses it as a game state
func ParseReader(r io.Reader) (*State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read game state: %w", err)
	}
	return Parse(string(data))
}

func parseLine(line string) ([]deck.Card, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	cards := make([]deck.Card, 0, len(fields))
	for _, field := range fields {
		card, err := deck.ParseCard(field)
		if err != nil {
			return nil, &FormatError{Kind: CardFormat, Input: field, Err: err}
		}
		cards = append(cards, card)
	}
	return cards, nil
}
