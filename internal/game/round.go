package game

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/deck"
)

// openingCards is the number of cards dealt by DealIn (player, dealer, player)
const openingCards = 3

// RoundOption configures a Round during creation
type RoundOption func(*Round)

// WithLogger sets the logger used for round events
func WithLogger(logger *log.Logger) RoundOption {
	return func(r *Round) { r.logger = logger.WithPrefix("round") }
}

// WithClock sets the clock used to timestamp commentary
func WithClock(clock quartz.Clock) RoundOption {
	return func(r *Round) { r.clock = clock }
}

// Round orchestrates a single player against the dealer: the opening deal,
// the player's commands, the dealer's policy and the final resolution.
// A Round is not safe for concurrent use; each session owns its own.
type Round struct {
	player     *Player
	dealer     *Dealer
	shoe       Shoe
	multiplier float64

	id         string
	commentary []Entry
	resolved   bool
	result     Result

	logger *log.Logger
	clock  quartz.Clock
}

// NewRound creates a round controller. Nothing is dealt until DealIn.
func NewRound(player *Player, dealer *Dealer, shoe Shoe, multiplier float64, opts ...RoundOption) *Round {
	r := &Round{
		player:     player,
		dealer:     dealer,
		shoe:       shoe,
		multiplier: multiplier,
		logger:     log.NewWithOptions(io.Discard, log.Options{}),
		clock:      quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Player returns the player
func (r *Round) Player() *Player {
	return r.player
}

// Dealer returns the dealer
func (r *Round) Dealer() *Dealer {
	return r.dealer
}

// ID returns the identifier of the current round, empty before the first deal
func (r *Round) ID() string {
	return r.id
}

// Multiplier returns the blackjack payout multiplier
func (r *Round) Multiplier() float64 {
	return r.multiplier
}

// Result returns the round result, Unresolved until Update resolves it
func (r *Round) Result() Result {
	return r.result
}

// Resolved reports whether the current round has been resolved
func (r *Round) Resolved() bool {
	return r.resolved
}

// Commentary returns a copy of the commentary log for the current round
func (r *Round) Commentary() []Entry {
	entries := make([]Entry, len(r.commentary))
	copy(entries, r.commentary)
	return entries
}

// Lines returns the commentary text without timestamps
func (r *Round) Lines() []string {
	lines := make([]string, len(r.commentary))
	for i, e := range r.commentary {
		lines[i] = e.Text
	}
	return lines
}

// Reset clears the commentary log and resolution state. Cards and scores are
// owned by the player, dealer and shoe.
func (r *Round) Reset() {
	r.commentary = nil
	r.resolved = false
	r.result = Unresolved
}

// DealIn starts a new round: everything is reset and the shoe reshuffled,
// then two cards go to the player and one to the dealer.
func (r *Round) DealIn() error {
	r.dealer.Reset()
	r.player.Reset()
	r.shoe.Reset()
	r.Reset()
	r.id = uuid.NewString()[:8]

	if r.shoe.Remaining() < openingCards {
		return fmt.Errorf("failed to deal round: %w", deck.ErrShoeExhausted)
	}

	if _, err := r.player.Deal(r.shoe); err != nil {
		return fmt.Errorf("failed to deal round: %w", err)
	}
	if _, err := r.dealer.Hit(r.shoe); err != nil {
		return fmt.Errorf("failed to deal round: %w", err)
	}
	if _, err := r.player.Deal(r.shoe); err != nil {
		return fmt.Errorf("failed to deal round: %w", err)
	}
	actions := r.player.Open()

	up, _ := r.dealer.UpCard()
	r.logger.Info("Round dealt",
		"round", r.id,
		"player", r.player.Hand.String(),
		"dealer", up,
		"actions", actions.String(),
		"remaining", r.shoe.Remaining())

	r.comment("Dealer shows %s", up.Name())
	r.announceActions()
	return nil
}

// Hit draws a card for the player
func (r *Round) Hit() error {
	card, err := r.player.Hit(r.shoe)
	if err != nil {
		return err
	}

	r.logger.Debug("Player hit", "round", r.id, "card", card, "outcome", r.player.Outcome())
	r.comment("Player hits and draws %s", card.Name())
	r.announceActions()
	return nil
}

// Stand closes the player's turn
func (r *Round) Stand() error {
	if err := r.player.Stand(); err != nil {
		return err
	}

	r.logger.Debug("Player stood", "round", r.id, "outcome", r.player.Outcome())
	r.comment("Player stands on %s", r.player.Outcome())
	return nil
}

// DoubleDown draws one final card for the player and closes the turn
func (r *Round) DoubleDown() error {
	card, err := r.player.DoubleDown(r.shoe)
	if err != nil {
		return err
	}

	r.logger.Debug("Player doubled down", "round", r.id, "card", card, "outcome", r.player.Outcome())
	r.comment("Player doubles down and draws %s for %s", card.Name(), r.player.Outcome())
	return nil
}

// Apply runs the command for action and then Update, the sequence a
// presentation layer performs for each user input.
func (r *Round) Apply(action Action) error {
	var err error
	switch action {
	case Hit:
		err = r.Hit()
	case Stand:
		err = r.Stand()
	case DoubleDown:
		err = r.DoubleDown()
	default:
		err = fmt.Errorf("%w: %d", ErrInvalidAction, action)
	}
	if err != nil {
		return err
	}
	return r.Update()
}

// Update resolves the round once the player's turn has closed. It is a no-op
// while the player can still act, before the first deal, and after the round
// has been resolved.
func (r *Round) Update() error {
	if !r.player.TurnClosed() || r.resolved {
		return nil
	}

	player := r.player.Outcome()
	switch {
	case player.Kind == Bust:
		r.resolve(DealerWins, "Player busts. Dealer takes the bet.")
		return nil
	case player.Kind == Blackjack && !r.dealerMayHaveBlackjack():
		r.resolve(PlayerBlackjack, fmt.Sprintf("Blackjack! Player wins %sx the bet.", r.formatMultiplier()))
		return nil
	}

	if r.dealer.CardCount() < 2 {
		r.comment("Dealer plays")
	}
	if err := r.playDealer(); err != nil {
		return err
	}

	dealer := r.dealer.Outcome()
	switch {
	case dealer.Kind == Bust:
		r.resolve(PlayerWins, "Dealer busts. Player wins.")
	case dealer.Kind == Blackjack && player.Kind == Blackjack:
		r.resolve(Push, "Both have blackjack. Push.")
	case dealer.Kind == Blackjack:
		r.resolve(DealerWins, "Dealer has blackjack. Dealer wins.")
	case player.Kind == Blackjack:
		r.resolve(PlayerBlackjack, fmt.Sprintf("Player blackjack beats dealer's %s. Player wins %sx the bet.", dealer, r.formatMultiplier()))
	case dealer.Value == player.Value:
		r.resolve(Push, fmt.Sprintf("Push at %d.", dealer.Value))
	case dealer.Value > player.Value:
		r.resolve(DealerWins, fmt.Sprintf("Dealer's %d beats player's %d. Dealer wins.", dealer.Value, player.Value))
	default:
		r.resolve(PlayerWins, fmt.Sprintf("Player's %d beats dealer's %d. Player wins.", player.Value, dealer.Value))
	}
	return nil
}

// dealerMayHaveBlackjack checks only the exposed card: an Ace or a ten-value
// card could complete a dealer blackjack.
func (r *Round) dealerMayHaveBlackjack() bool {
	up, ok := r.dealer.UpCard()
	if !ok {
		return false
	}
	return up.IsAce() || up.IsTenValue()
}

// playDealer draws for the dealer until house rules say stop. The loop is
// bounded by the shoe: an empty shoe ends it with ErrShoeExhausted.
func (r *Round) playDealer() error {
	for r.dealer.MustDraw() {
		card, err := r.dealer.Hit(r.shoe)
		if err != nil {
			return fmt.Errorf("dealer turn interrupted: %w", err)
		}

		outcome := r.dealer.Outcome()
		r.logger.Debug("Dealer drew", "round", r.id, "card", card, "outcome", outcome)

		switch {
		case outcome.Kind == Blackjack:
			r.comment("Dealer draws %s for blackjack", card.Name())
		case outcome.Kind == Bust:
			r.comment("Dealer draws %s and busts", card.Name())
		case r.dealer.MustDraw() && outcome.Value == 17:
			r.comment("Dealer draws %s for soft 17 and must hit again", card.Name())
		case r.dealer.MustDraw():
			r.comment("Dealer draws %s for %d and hits again", card.Name(), outcome.Value)
		default:
			r.comment("Dealer draws %s and stands on %d", card.Name(), outcome.Value)
		}
	}
	return nil
}

// announceActions describes the player's position after a draw
func (r *Round) announceActions() {
	outcome := r.player.Outcome()
	switch {
	case outcome.Kind == Blackjack:
		r.comment("Player has blackjack")
	case outcome.Kind == Bust:
		low, _ := r.player.Scores()
		r.comment("Player busts with %d", low)
	case outcome.IsTerminal():
		r.comment("Player has 21")
	case r.player.Actions().Has(DoubleDown):
		r.comment("Player has %s and may hit, stand or double down", outcome)
	default:
		r.comment("Player has %s and may hit or stand", outcome)
	}
}

func (r *Round) resolve(result Result, line string) {
	r.result = result
	r.resolved = true
	r.commentary = append(r.commentary, Entry{At: r.clock.Now(), Text: line})

	r.logger.Info("Round resolved",
		"round", r.id,
		"result", result,
		"player", r.player.Outcome(),
		"dealer", r.dealer.Outcome(),
		"payout", result.Payout(r.multiplier))
}

func (r *Round) comment(format string, args ...any) {
	r.commentary = append(r.commentary, Entry{
		At:   r.clock.Now(),
		Text: fmt.Sprintf(format, args...),
	})
}

func (r *Round) formatMultiplier() string {
	return strconv.FormatFloat(r.multiplier, 'g', -1, 64)
}

func (r *Round) String() string {
	return fmt.Sprintf("Round %s: %s", r.id, r.result)
}
