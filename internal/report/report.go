// Package report renders per-player category probabilities for the terminal or
// as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerodds/internal/evaluator"
	"github.com/lox/pokerodds/internal/game"
)

// PlayerOdds holds the probabilities computed for one seat
type PlayerOdds struct {
	Seat          int
	Pocket        game.Pocket
	Probabilities map[evaluator.Category]float64
}

// Report is the result of one poker-odds run
type Report struct {
	Board   game.Board
	Players []PlayerOdds
}

// Percent rounds a probability to a whole percentage
func Percent(p float64) int {
	return int(math.Round(p * 100))
}

// Order returns the categories present in probs, strongest first
func Order(probs map[evaluator.Category]float64) []evaluator.Category {
	ordered := make([]evaluator.Category, 0, len(probs))
	for i := len(evaluator.Categories) - 1; i >= 0; i-- {
		if _, ok := probs[evaluator.Categories[i]]; ok {
			ordered = append(ordered, evaluator.Categories[i])
		}
	}
	return ordered
}

type styles struct {
	header   lipgloss.Style
	label    lipgloss.Style
	percent  lipgloss.Style
	certain  lipgloss.Style
	unlikely lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		label:    r.NewStyle().Foreground(lipgloss.Color("12")),
		percent:  r.NewStyle().Foreground(lipgloss.Color("11")),
		certain:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		unlikely: r.NewStyle().Faint(true),
	}
}

func (s styles) forPercent(pct int) lipgloss.Style {
	switch pct {
	case 100:
		return s.certain
	case 0:
		return s.unlikely
	default:
		return s.percent
	}
}

// WriteText writes one block per player:
//
//	Player 1:
//	Royal Flush: 0%
//	...
//	Two of a Kind: 39%
//
// Blocks are separated by a blank line. Styling is dropped when color is false
// or w is not a terminal.
func WriteText(w io.Writer, r *Report, color bool) error {
	var renderer *lipgloss.Renderer
	if color {
		renderer = lipgloss.NewRenderer(w)
	} else {
		renderer = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}
	st := newStyles(renderer)

	for i, player := range r.Players {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, st.header.Render(fmt.Sprintf("Player %d:", player.Seat+1))); err != nil {
			return err
		}
		for _, category := range Order(player.Probabilities) {
			pct := Percent(player.Probabilities[category])
			if _, err := fmt.Fprintf(w, "%s %s\n",
				st.label.Render(category.String()+":"),
				st.forPercent(pct).Render(fmt.Sprintf("%d%%", pct))); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonPlayer struct {
	Player        int                            `json:"player"`
	Pocket        string                         `json:"pocket"`
	Probabilities map[evaluator.Category]float64 `json:"probabilities"`
}

type jsonReport struct {
	Board   string       `json:"board"`
	Street  string       `json:"street"`
	Players []jsonPlayer `json:"players"`
}

// WriteJSON writes the report as an indented JSON document. Players are numbered
// from 1 and probabilities are keyed by category slug.
func WriteJSON(w io.Writer, r *Report) error {
	doc := jsonReport{
		Board:   r.Board.String(),
		Players: make([]jsonPlayer, 0, len(r.Players)),
	}
	if street, ok := r.Board.Street(); ok {
		doc.Street = street.String()
	}
	for _, player := range r.Players {
		doc.Players = append(doc.Players, jsonPlayer{
			Player:        player.Seat + 1,
			Pocket:        player.Pocket.String(),
			Probabilities: player.Probabilities,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
