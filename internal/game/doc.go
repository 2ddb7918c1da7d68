// Package game models a Texas Hold'em snapshot: the community board and the
// pockets of up to ten players.
//
// The main type is State, a validated snapshot in which no card appears twice.
//
// # Text Format
//
// The first line holds the board, the following lines one pocket each:
//
//	As 5d 7h
//	Ks Kd
//
//	Tc 9c
//
// A blank board line means pre-flop; a blank pocket line is a player whose cards
// are unknown. Parse and ParseReader read this format:
//
//	state, err := game.Parse(input)
//	if err != nil {
//	    var formatErr *game.FormatError
//	    if errors.As(err, &formatErr) {
//	        fmt.Println(formatErr.Kind, formatErr.Input)
//	    }
//	}
//	for _, seat := range state.Seated() {
//	    fmt.Println(seat, state.Pockets[seat])
//	}
//
// # Building States Directly
//
// NewState applies the same checks to cards built in code:
//
//	board := game.Board(deck.MustParseCards("AhKhQh"))
//	state, err := game.NewState(board, game.Pocket(deck.MustParseCards("2d7c")))
package game
