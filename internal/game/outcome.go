package game

import "strconv"

// OutcomeKind classifies a hand's best outcome
type OutcomeKind int

const (
	Pending OutcomeKind = iota
	Blackjack
	Bust
	Total
)

// String returns the string representation of an outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case Pending:
		return "pending"
	case Blackjack:
		return "blackjack"
	case Bust:
		return "bust"
	case Total:
		return "total"
	default:
		return "unknown"
	}
}

// Outcome is the best result a hand currently achieves. Value is only
// meaningful when Kind is Total.
type Outcome struct {
	Kind  OutcomeKind
	Value int
}

// PendingOutcome is the outcome of a hand holding fewer than two cards
var PendingOutcome = Outcome{Kind: Pending}

// Evaluate classifies a hand of cardCount cards with the given running totals.
func Evaluate(cardCount, low, high int) Outcome {
	switch {
	case cardCount < 2:
		return PendingOutcome
	case cardCount == 2 && (low == 21 || high == 21):
		return Outcome{Kind: Blackjack}
	case low > 21 && high > 21:
		return Outcome{Kind: Bust}
	case high <= 21:
		return Outcome{Kind: Total, Value: high}
	default:
		return Outcome{Kind: Total, Value: low}
	}
}

// IsTerminal reports whether no further draw can improve the hand: a
// blackjack, a bust, or exactly 21.
func (o Outcome) IsTerminal() bool {
	switch o.Kind {
	case Blackjack, Bust:
		return true
	case Total:
		return o.Value == 21
	default:
		return false
	}
}

func (o Outcome) String() string {
	switch o.Kind {
	case Pending:
		return "Pending"
	case Blackjack:
		return "Blackjack"
	case Bust:
		return "Bust"
	case Total:
		return strconv.Itoa(o.Value)
	default:
		return "?"
	}
}
