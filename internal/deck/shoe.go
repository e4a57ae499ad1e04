package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/lox/blackjack/internal/randutil"
)

// CardsPerDeck is the size of one standard deck
const CardsPerDeck = 52

// ErrShoeExhausted is returned when drawing from an empty shoe
var ErrShoeExhausted = errors.New("deck: shoe exhausted")

// Shoe is an ordered, shuffled collection of cards drawn from one or more
// standard decks.
type Shoe struct {
	deckCount int
	cards     []Card
	rng       *rand.Rand

	// stacked holds a fixed draw order restored on Reset instead of shuffling
	stacked []Card
}

// NewShoe creates a shoe of deckCount standard decks, composed and shuffled.
// A nil rng falls back to a time-seeded generator.
func NewShoe(deckCount int, rng *rand.Rand) (*Shoe, error) {
	if deckCount < 1 {
		return nil, fmt.Errorf("deck count must be at least 1, got %d", deckCount)
	}
	if rng == nil {
		rng = randutil.New(time.Now().UnixNano())
	}

	s := &Shoe{
		deckCount: deckCount,
		cards:     make([]Card, 0, CardsPerDeck*deckCount),
		rng:       rng,
	}
	s.Reset()
	return s, nil
}

// NewStackedShoe creates a shoe that deals cards in exactly the given order.
// Reset restores the same order rather than reshuffling, which makes rounds
// reproducible for tests and scripted play.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)

	s := &Shoe{
		deckCount: (len(cards) + CardsPerDeck - 1) / CardsPerDeck,
		stacked:   stacked,
	}
	s.Reset()
	return s
}

// Draw removes and returns the top card
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeExhausted
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Reset discards every remaining card and recomposes a full, freshly
// shuffled shoe.
func (s *Shoe) Reset() {
	if s.stacked != nil {
		s.cards = make([]Card, len(s.stacked))
		copy(s.cards, s.stacked)
		return
	}

	// Draw reslices from the front, so build into a fresh backing array
	s.cards = make([]Card, 0, CardsPerDeck*s.deckCount)
	for n := 0; n < s.deckCount; n++ {
		for _, suit := range Suits {
			for rank := Ace; rank <= King; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}

	s.shuffle()
}

// shuffle randomizes the order of cards using Fisher-Yates
func (s *Shoe) shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// DeckCount returns the number of decks the shoe is composed from
func (s *Shoe) DeckCount() int {
	return s.deckCount
}

// Peek returns the top card without removing it
func (s *Shoe) Peek() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	return s.cards[0], true
}

func (s *Shoe) String() string {
	return fmt.Sprintf("Shoe has %d cards remaining", len(s.cards))
}
