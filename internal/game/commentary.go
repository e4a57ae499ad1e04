package game

import (
	"fmt"
	"time"
)

// Entry is one line of round commentary
type Entry struct {
	At   time.Time
	Text string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.At.Format("15:04:05"), e.Text)
}

// Result is the resolved outcome of a round from the player's point of view
type Result int

const (
	Unresolved Result = iota
	PlayerWins
	PlayerBlackjack
	DealerWins
	Push
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case Unresolved:
		return "unresolved"
	case PlayerWins:
		return "player wins"
	case PlayerBlackjack:
		return "player blackjack"
	case DealerWins:
		return "dealer wins"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// Payout returns the multiple of the stake the player receives (negative for
// a loss) given the blackjack multiplier.
func (r Result) Payout(multiplier float64) float64 {
	switch r {
	case PlayerWins:
		return 1
	case PlayerBlackjack:
		return multiplier
	case DealerWins:
		return -1
	default:
		return 0
	}
}
