package game

import "fmt"

// FormatKind names the part of a game state that failed to parse
type FormatKind int

const (
	CardFormat FormatKind = iota
	BoardFormat
	PocketFormat
	GameStateFormat
)

// String returns the name of the format
func (k FormatKind) String() string {
	switch k {
	case CardFormat:
		return "Card"
	case BoardFormat:
		return "Board"
	case PocketFormat:
		return "Pocket"
	case GameStateFormat:
		return "GameState"
	default:
		return "Unknown"
	}
}

// FormatError reports input that cannot be resolved to a game state. Input holds
// the offending fragment when one is known.
type FormatError struct {
	Kind   FormatKind
	Input  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("the provided string could not be resolved to a %s format", e.Kind)
	if e.Input != "" {
		msg = fmt.Sprintf("the string %q could not be resolved to a %s format", e.Input, e.Kind)
	}
	switch {
	case e.Reason != "":
		msg += ": " + e.Reason
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
