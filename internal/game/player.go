package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// ErrInvalidAction is returned when a command is not in the player's legal set
var ErrInvalidAction = errors.New("game: invalid action")

// Action represents a move available to the player
type Action int

const (
	Hit Action = iota
	Stand
	DoubleDown
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "Hit"
	case Stand:
		return "Stand"
	case DoubleDown:
		return "Double Down"
	default:
		return "Unknown"
	}
}

// ParseAction maps user input to an action
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit", "h":
		return Hit, nil
	case "stand", "s", "stay":
		return Stand, nil
	case "double", "d", "double down", "double-down", "doubledown":
		return DoubleDown, nil
	default:
		return 0, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, s)
	}
}

// ActionSet is a set of legal actions
type ActionSet uint8

// NewActionSet builds a set from the given actions
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s |= 1 << a
	}
	return s
}

// Has reports whether a is in the set
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Empty reports whether no action is legal
func (s ActionSet) Empty() bool {
	return s == 0
}

// List returns the actions in the set in Hit, Stand, DoubleDown order
func (s ActionSet) List() []Action {
	var actions []Action
	for _, a := range []Action{Hit, Stand, DoubleDown} {
		if s.Has(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (s ActionSet) String() string {
	actions := s.List()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

// Player is a hand plus the action state machine deciding which moves are
// legal.
type Player struct {
	Hand

	actions ActionSet
	dealt   bool
	doubled bool
}

// NewPlayer creates a player awaiting the first deal
func NewPlayer() *Player {
	return &Player{}
}

// Actions returns the currently legal actions
func (p *Player) Actions() ActionSet {
	return p.actions
}

// Dealt reports whether a round has been dealt to the player
func (p *Player) Dealt() bool {
	return p.dealt
}

// DoubledDown reports whether the turn was closed by doubling down
func (p *Player) DoubledDown() bool {
	return p.doubled
}

// TurnClosed reports whether the player has been dealt in and can no longer act
func (p *Player) TurnClosed() bool {
	return p.dealt && p.actions.Empty()
}

// Reset clears the hand and returns the player to awaiting a deal
func (p *Player) Reset() {
	p.Hand.Reset()
	p.actions = 0
	p.dealt = false
	p.doubled = false
}

// Deal draws an opening card. Actions stay closed until Open is called once
// the opening cards are all dealt.
func (p *Player) Deal(shoe Shoe) (deck.Card, error) {
	return p.Hand.Hit(shoe)
}

// Open marks the opening deal complete and computes the legal actions
func (p *Player) Open() ActionSet {
	p.dealt = true
	p.refreshActions()
	return p.actions
}

// Hit draws a card and recomputes the legal actions
func (p *Player) Hit(shoe Shoe) (deck.Card, error) {
	if err := p.require(Hit); err != nil {
		return deck.Card{}, err
	}
	card, err := p.Hand.Hit(shoe)
	if err != nil {
		return deck.Card{}, err
	}
	p.refreshActions()
	return card, nil
}

// Stand closes the turn without drawing
func (p *Player) Stand() error {
	if err := p.require(Stand); err != nil {
		return err
	}
	p.actions = 0
	return nil
}

// DoubleDown draws exactly one card and closes the turn regardless of the
// result.
func (p *Player) DoubleDown(shoe Shoe) (deck.Card, error) {
	if err := p.require(DoubleDown); err != nil {
		return deck.Card{}, err
	}
	card, err := p.Hand.Hit(shoe)
	if err != nil {
		return deck.Card{}, err
	}
	p.actions = 0
	p.doubled = true
	return card, nil
}

func (p *Player) require(a Action) error {
	if !p.actions.Has(a) {
		if !p.dealt {
			return fmt.Errorf("%w: %s before the deal", ErrInvalidAction, a)
		}
		return fmt.Errorf("%w: %s not allowed (legal: %q)", ErrInvalidAction, a, p.actions)
	}
	return nil
}

// refreshActions applies the action rules. Double down is only offered on
// the opening two cards.
func (p *Player) refreshActions() {
	switch {
	case p.outcome.IsTerminal():
		p.actions = 0
	case len(p.cards) == 2:
		p.actions = NewActionSet(Hit, Stand, DoubleDown)
	case len(p.cards) > 2:
		p.actions = NewActionSet(Hit, Stand)
	default:
		p.actions = 0
	}
}
