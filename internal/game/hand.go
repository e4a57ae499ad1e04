package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Shoe is the source of cards a round draws from. *deck.Shoe satisfies it.
type Shoe interface {
	Draw() (deck.Card, error)
	Reset()
	Remaining() int
}

// Hand holds the cards drawn by one party along with both running totals.
// The low total counts every Ace as 1, the high total counts every Ace as 11.
type Hand struct {
	cards   []deck.Card
	scores  [2]int
	outcome Outcome
}

// Hit draws one card from the shoe into the hand. The hand is left untouched
// if the shoe cannot supply a card.
func (h *Hand) Hit(shoe Shoe) (deck.Card, error) {
	card, err := shoe.Draw()
	if err != nil {
		return deck.Card{}, fmt.Errorf("failed to draw card: %w", err)
	}
	h.add(card)
	return card, nil
}

// add is the single mutation point for hand state
func (h *Hand) add(card deck.Card) {
	low, high := card.Scores()
	h.cards = append(h.cards, card)
	h.scores[0] += low
	h.scores[1] += high
	h.outcome = Evaluate(len(h.cards), h.scores[0], h.scores[1])
}

// Reset clears all cards and totals
func (h *Hand) Reset() {
	h.cards = nil
	h.scores = [2]int{}
	h.outcome = PendingOutcome
}

// Cards returns a copy of the cards in draw order
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// CardCount returns the number of cards held
func (h *Hand) CardCount() int {
	return len(h.cards)
}

// Scores returns the low (Aces as 1) and high (Aces as 11) totals
func (h *Hand) Scores() (low, high int) {
	return h.scores[0], h.scores[1]
}

// DistinctScores returns the totals with duplicates removed, low first
func (h *Hand) DistinctScores() []int {
	if h.scores[0] == h.scores[1] {
		return []int{h.scores[0]}
	}
	return []int{h.scores[0], h.scores[1]}
}

// Outcome returns the best outcome for the current cards
func (h *Hand) Outcome() Outcome {
	return h.outcome
}

// HasAce reports whether any Ace has been drawn
func (h *Hand) HasAce() bool {
	for _, c := range h.cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}

// UpCard returns the first card drawn
func (h *Hand) UpCard() (deck.Card, bool) {
	if len(h.cards) == 0 {
		return deck.Card{}, false
	}
	return h.cards[0], true
}

func (h *Hand) String() string {
	labels := make([]string, len(h.cards))
	for i, c := range h.cards {
		labels[i] = c.String()
	}

	scores := make([]string, 0, 2)
	for _, s := range h.DistinctScores() {
		scores = append(scores, fmt.Sprintf("%d", s))
	}

	return fmt.Sprintf("[%s] scores %s, best %s",
		strings.Join(labels, " "), strings.Join(scores, "/"), h.outcome)
}
