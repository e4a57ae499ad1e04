package game

// Dealer is a hand plus the fixed house drawing policy
type Dealer struct {
	Hand
}

// NewDealer creates a dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{}
}

// MustDraw reports whether house rules require another card: below 17, or
// exactly 17 while holding an Ace.
func (d *Dealer) MustDraw() bool {
	o := d.outcome
	switch o.Kind {
	case Pending:
		return true
	case Total:
		return o.Value < 17 || (o.Value == 17 && d.HasAce())
	default:
		return false
	}
}
