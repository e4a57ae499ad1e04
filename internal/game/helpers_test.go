package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
)

// quietLogger returns a logger that drops everything
func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newTestRound builds a round over a stacked shoe. Cards are dealt in order:
// player, dealer, player, then whatever the round draws next.
func newTestRound(t *testing.T, cards string) (*Round, *quartz.Mock) {
	t.Helper()

	clock := quartz.NewMock(t)
	shoe := deck.NewStackedShoe(deck.MustParseCards(cards)...)
	r := NewRound(NewPlayer(), NewDealer(), shoe, 1.5,
		WithLogger(quietLogger()),
		WithClock(clock))
	return r, clock
}

// handOf builds a hand holding the given cards
func handOf(cards string) *Hand {
	h := &Hand{}
	for _, c := range deck.MustParseCards(cards) {
		h.add(c)
	}
	return h
}
