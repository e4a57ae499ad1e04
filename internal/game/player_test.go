package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
)

// dealPlayer deals the first two cards of cards to a fresh player and returns
// the shoe positioned at the third card.
func dealPlayer(t *testing.T, cards string) (*Player, *deck.Shoe) {
	t.Helper()

	shoe := deck.NewStackedShoe(deck.MustParseCards(cards)...)
	p := NewPlayer()
	for i := 0; i < 2; i++ {
		_, err := p.Deal(shoe)
		require.NoError(t, err)
	}
	p.Open()
	return p, shoe
}

func TestActionSet(t *testing.T) {
	s := NewActionSet(Hit, DoubleDown)
	assert.True(t, s.Has(Hit))
	assert.False(t, s.Has(Stand))
	assert.True(t, s.Has(DoubleDown))
	assert.False(t, s.Empty())
	assert.Equal(t, []Action{Hit, DoubleDown}, s.List())
	assert.Equal(t, "Hit, Double Down", s.String())
	assert.True(t, NewActionSet().Empty())
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"hit", Hit},
		{"H", Hit},
		{" stand ", Stand},
		{"s", Stand},
		{"double", DoubleDown},
		{"double down", DoubleDown},
		{"d", DoubleDown},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAction("split")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestPlayerActionsAfterDeal(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  ActionSet
	}{
		{"numeric two cards", "Th8d", NewActionSet(Hit, Stand, DoubleDown)},
		{"soft hand", "As6d", NewActionSet(Hit, Stand, DoubleDown)},
		{"blackjack closes turn", "AsKh", NewActionSet()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := dealPlayer(t, tt.cards)
			assert.Equal(t, tt.want, p.Actions())
			assert.True(t, p.Dealt())
		})
	}
}

func TestPlayerHit(t *testing.T) {
	t.Run("third card drops double down", func(t *testing.T) {
		p, shoe := dealPlayer(t, "5h4d2c")

		card, err := p.Hit(shoe)
		require.NoError(t, err)
		assert.Equal(t, deck.Two, card.Rank)
		assert.Equal(t, NewActionSet(Hit, Stand), p.Actions())
		assert.False(t, p.TurnClosed())
	})

	t.Run("bust closes turn", func(t *testing.T) {
		p, shoe := dealPlayer(t, "Th8d6c")

		_, err := p.Hit(shoe)
		require.NoError(t, err)
		assert.Equal(t, Outcome{Kind: Bust}, p.Outcome())
		assert.True(t, p.Actions().Empty())
		assert.True(t, p.TurnClosed())
	})

	t.Run("reaching 21 closes turn", func(t *testing.T) {
		p, shoe := dealPlayer(t, "7h7d7c")

		_, err := p.Hit(shoe)
		require.NoError(t, err)
		assert.Equal(t, Outcome{Kind: Total, Value: 21}, p.Outcome())
		assert.True(t, p.TurnClosed())
	})

	t.Run("soft 21 closes turn", func(t *testing.T) {
		p, shoe := dealPlayer(t, "As5d5c")

		_, err := p.Hit(shoe)
		require.NoError(t, err)
		assert.Equal(t, Outcome{Kind: Total, Value: 21}, p.Outcome())
		assert.True(t, p.TurnClosed())
	})
}

func TestPlayerStand(t *testing.T) {
	p, _ := dealPlayer(t, "Th8d")

	require.NoError(t, p.Stand())
	assert.True(t, p.TurnClosed())
	assert.Equal(t, 2, p.CardCount())

	err := p.Stand()
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestPlayerDoubleDown(t *testing.T) {
	t.Run("draws one card and closes", func(t *testing.T) {
		p, shoe := dealPlayer(t, "5h6d2c")

		_, err := p.DoubleDown(shoe)
		require.NoError(t, err)
		assert.Equal(t, 3, p.CardCount())
		assert.Equal(t, Outcome{Kind: Total, Value: 13}, p.Outcome())
		assert.True(t, p.TurnClosed())
		assert.True(t, p.DoubledDown())
	})

	t.Run("not offered after a hit", func(t *testing.T) {
		p, shoe := dealPlayer(t, "5h4d2c3s")

		_, err := p.Hit(shoe)
		require.NoError(t, err)

		_, err = p.DoubleDown(shoe)
		assert.ErrorIs(t, err, ErrInvalidAction)
		assert.Equal(t, 3, p.CardCount())
		assert.Equal(t, 1, shoe.Remaining())
	})
}

func TestPlayerRejectsActionsBeforeDeal(t *testing.T) {
	shoe := deck.NewStackedShoe(deck.MustParseCards("Th8d")...)
	p := NewPlayer()

	_, err := p.Hit(shoe)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.ErrorIs(t, p.Stand(), ErrInvalidAction)
	_, err = p.DoubleDown(shoe)
	assert.ErrorIs(t, err, ErrInvalidAction)

	assert.Equal(t, 2, shoe.Remaining())
	assert.False(t, p.Dealt())
	assert.False(t, p.TurnClosed())
}

func TestPlayerHitOnEmptyShoeKeepsState(t *testing.T) {
	p, shoe := dealPlayer(t, "5h4d")

	_, err := p.Hit(shoe)
	assert.ErrorIs(t, err, deck.ErrShoeExhausted)
	assert.Equal(t, NewActionSet(Hit, Stand, DoubleDown), p.Actions())
	assert.Equal(t, 2, p.CardCount())
}

func TestPlayerReset(t *testing.T) {
	p, shoe := dealPlayer(t, "5h6d2c")
	_, err := p.DoubleDown(shoe)
	require.NoError(t, err)

	p.Reset()
	assert.False(t, p.Dealt())
	assert.False(t, p.DoubledDown())
	assert.True(t, p.Actions().Empty())
	assert.Zero(t, p.CardCount())
	assert.Equal(t, PendingOutcome, p.Outcome())
}

func TestDealerMustDraw(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  bool
	}{
		{"one card", "Th", true},
		{"hard 16", "Th6d", true},
		{"hard 17", "Th7d", false},
		{"soft 17", "As6d", true},
		{"17 holding an ace", "As6dTc", true},
		{"soft 18", "As7d", false},
		{"blackjack", "AsKh", false},
		{"bust", "Th6d9c", false},
		{"hard 20", "ThQd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDealer()
			d.Hand = *handOf(tt.cards)
			assert.Equal(t, tt.want, d.MustDraw())
		})
	}
}
