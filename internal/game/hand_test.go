package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		cardCount int
		low, high int
		want      Outcome
	}{
		{"no cards", 0, 0, 0, PendingOutcome},
		{"one card", 1, 1, 11, PendingOutcome},
		{"two card 21", 2, 11, 21, Outcome{Kind: Blackjack}},
		{"three card 21 is a total", 3, 21, 21, Outcome{Kind: Total, Value: 21}},
		{"soft total preferred", 2, 7, 17, Outcome{Kind: Total, Value: 17}},
		{"falls back to hard total", 3, 17, 27, Outcome{Kind: Total, Value: 17}},
		{"both over", 3, 24, 24, Outcome{Kind: Bust}},
		{"hard 22 with soft 32", 4, 22, 32, Outcome{Kind: Bust}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.cardCount, tt.low, tt.high))
		})
	}
}

func TestOutcomeIsTerminal(t *testing.T) {
	assert.False(t, PendingOutcome.IsTerminal())
	assert.True(t, Outcome{Kind: Blackjack}.IsTerminal())
	assert.True(t, Outcome{Kind: Bust}.IsTerminal())
	assert.True(t, Outcome{Kind: Total, Value: 21}.IsTerminal())
	assert.False(t, Outcome{Kind: Total, Value: 20}.IsTerminal())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Pending", PendingOutcome.String())
	assert.Equal(t, "Blackjack", Outcome{Kind: Blackjack}.String())
	assert.Equal(t, "Bust", Outcome{Kind: Bust}.String())
	assert.Equal(t, "18", Outcome{Kind: Total, Value: 18}.String())
}

func TestHandTotals(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		low      int
		high     int
		distinct []int
		outcome  Outcome
	}{
		{"single ace", "As", 1, 11, []int{1, 11}, PendingOutcome},
		{"ace king", "AsKh", 11, 21, []int{11, 21}, Outcome{Kind: Blackjack}},
		{"king ace order", "KhAs", 11, 21, []int{11, 21}, Outcome{Kind: Blackjack}},
		{"pair of aces", "AsAh", 2, 22, []int{2, 22}, Outcome{Kind: Total, Value: 2}},
		{"soft seventeen", "As6d", 7, 17, []int{7, 17}, Outcome{Kind: Total, Value: 17}},
		{"ace demoted", "As6d9c", 16, 26, []int{16, 26}, Outcome{Kind: Total, Value: 16}},
		{"hard bust", "Th8d6c", 24, 24, []int{24}, Outcome{Kind: Bust}},
		{"faces count ten", "JhQd", 20, 20, []int{20}, Outcome{Kind: Total, Value: 20}},
		{"three card 21", "7h7d7c", 21, 21, []int{21}, Outcome{Kind: Total, Value: 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handOf(tt.cards)

			low, high := h.Scores()
			assert.Equal(t, tt.low, low)
			assert.Equal(t, tt.high, high)
			assert.LessOrEqual(t, low, high)
			assert.Equal(t, tt.distinct, h.DistinctScores())
			assert.Equal(t, tt.outcome, h.Outcome())
		})
	}
}

func TestHandHitAndReset(t *testing.T) {
	shoe := deck.NewStackedShoe(deck.MustParseCards("As9d")...)
	h := &Hand{}

	card, err := h.Hit(shoe)
	require.NoError(t, err)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Ace), card)
	assert.True(t, h.HasAce())

	_, err = h.Hit(shoe)
	require.NoError(t, err)
	assert.Equal(t, 2, h.CardCount())
	assert.Equal(t, Outcome{Kind: Total, Value: 20}, h.Outcome())

	up, ok := h.UpCard()
	require.True(t, ok)
	assert.Equal(t, card, up)

	h.Reset()
	assert.Empty(t, h.Cards())
	low, high := h.Scores()
	assert.Zero(t, low)
	assert.Zero(t, high)
	assert.Equal(t, PendingOutcome, h.Outcome())
	assert.False(t, h.HasAce())
}

func TestHandHitOnEmptyShoeLeavesHandUntouched(t *testing.T) {
	shoe := deck.NewStackedShoe(deck.MustParseCards("Kd")...)
	h := &Hand{}

	_, err := h.Hit(shoe)
	require.NoError(t, err)

	_, err = h.Hit(shoe)
	assert.ErrorIs(t, err, deck.ErrShoeExhausted)
	assert.Equal(t, 1, h.CardCount())
	low, high := h.Scores()
	assert.Equal(t, 10, low)
	assert.Equal(t, 10, high)
}

func TestHandCardsReturnsCopy(t *testing.T) {
	h := handOf("AsKh")
	cards := h.Cards()
	cards[0] = deck.NewCard(deck.Clubs, deck.Two)

	assert.Equal(t, deck.Ace, h.Cards()[0].Rank)
}

func TestHandString(t *testing.T) {
	assert.Equal(t, "[A♠ 6♦] scores 7/17, best 17", handOf("As6d").String())
}
