package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankProjections(t *testing.T) {
	assert.Equal(t, 1, Ace.AceLow())
	assert.Equal(t, 14, Ace.AceHigh())
	for _, rank := range Ranks[:12] {
		assert.Equal(t, rank.AceLow(), rank.AceHigh(), "rank %s", rank)
	}
	assert.Equal(t, 2, Two.AceLow())
	assert.Equal(t, 13, King.AceHigh())
}

func TestCardNotation(t *testing.T) {
	assert.Equal(t, "As", NewCard(Spades, Ace).Notation())
	assert.Equal(t, "Th", NewCard(Hearts, Ten).Notation())
	assert.Equal(t, "2c", NewCard(Clubs, Two).Notation())
	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "?", Rank(1).String())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{input: "As", want: Card{Suit: Spades, Rank: Ace}},
		{input: "Td", want: Card{Suit: Diamonds, Rank: Ten}},
		{input: "2c", want: Card{Suit: Clubs, Rank: Two}},
		{input: "9h", want: Card{Suit: Hearts, Rank: Nine}},
		{input: "as", wantErr: true},
		{input: "AS", wantErr: true},
		{input: "1s", wantErr: true},
		{input: "10s", wantErr: true},
		{input: "A", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "mixed suits with spaces",
			input: "Ah Kd Qc",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCards(t *testing.T) {
	assert.Equal(t, []Card{{Suit: Spades, Rank: Ace}, {Suit: Spades, Rank: King}}, MustParseCards("AsKs"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}
