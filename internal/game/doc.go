// Package game implements the blackjack rule engine.
//
// A Round orchestrates one Player against one Dealer drawing from a shared
// Shoe. Both parties embed a Hand, which tracks drawn cards, the hard and
// soft running totals, and the derived Outcome. The Player adds an action
// state machine (Hit, Stand, Double Down); the Dealer adds the fixed house
// drawing policy (hit below 17 and on soft 17).
//
// # Basic Usage
//
//	shoe, _ := deck.NewShoe(6, rng)
//	r := game.NewRound(game.NewPlayer(), game.NewDealer(), shoe, 1.5)
//	if err := r.DealIn(); err != nil {
//	    return err
//	}
//	for !r.Player().Actions().Empty() {
//	    if err := r.Apply(game.Stand); err != nil {
//	        return err
//	    }
//	}
//	fmt.Println(r.Result(), r.Lines())
//
// Every command is followed by Update, which resolves the round once the
// player's turn has closed. Resolution fires exactly once per round.
//
// # Deterministic Testing
//
// deck.NewStackedShoe deals a fixed sequence of cards, and WithClock accepts
// a quartz mock so commentary timestamps are reproducible:
//
//	shoe := deck.NewStackedShoe(deck.MustParseCards("As7dKh")...)
//	r := game.NewRound(game.NewPlayer(), game.NewDealer(), shoe, 1.5,
//	    game.WithClock(quartz.NewMock(t)))
package game
