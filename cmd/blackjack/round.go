package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// RoundCmd deals a single round and applies actions from the command line
type RoundCmd struct {
	GameFlags `embed:""`

	Stack   string   `help:"Deal from a fixed card sequence instead of a shuffled shoe (e.g. AsKh7d)"`
	Actions []string `arg:"" optional:"" help:"Actions to apply in order (hit, stand, double)"`
}

func (c *RoundCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	var stack []deck.Card
	if c.Stack != "" {
		stack, err = deck.ParseCards(c.Stack)
		if err != nil {
			return fmt.Errorf("invalid --stack: %w", err)
		}
	}

	logger, closer, err := openLogger(cfg, "ROUND")
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close log file", "error", err)
		}
	}()

	round, seed, err := newRound(cfg, logger, stack)
	if err != nil {
		return err
	}
	logger.Info("Scripted round", "seed", seed, "actions", c.Actions)

	if err := round.DealIn(); err != nil {
		return err
	}
	if err := round.Update(); err != nil {
		return err
	}

	for _, input := range c.Actions {
		action, err := game.ParseAction(input)
		if err != nil {
			return err
		}
		if err := round.Apply(action); err != nil {
			printRound(os.Stdout, round)
			return fmt.Errorf("action %q: %w", input, err)
		}
	}

	printRound(os.Stdout, round)
	return nil
}

// printRound writes the hands, commentary and result of a round
func printRound(w io.Writer, round *game.Round) {
	fmt.Fprintf(w, "Round %s\n", round.ID())
	fmt.Fprintf(w, "Dealer: %s\n", formatHand(&round.Dealer().Hand))
	fmt.Fprintf(w, "Player: %s\n", formatHand(&round.Player().Hand))
	fmt.Fprintln(w)

	for _, line := range round.Lines() {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)

	if !round.Resolved() {
		fmt.Fprintf(w, "Player to act: %s\n", round.Player().Actions())
		return
	}

	result := round.Result()
	fmt.Fprintf(w, "Result: %s (payout %gx)\n", result, result.Payout(round.Multiplier()))
}

func formatHand(h *game.Hand) string {
	names := make([]string, 0, h.CardCount())
	for _, c := range h.Cards() {
		names = append(names, c.String())
	}
	return fmt.Sprintf("[%s] best %s", strings.Join(names, " "), h.Outcome())
}
