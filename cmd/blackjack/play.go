package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs the interactive terminal game
type PlayCmd struct {
	GameFlags `embed:""`

	NoColor bool `help:"Disable colour output"`
}

func (c *PlayCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(cfg, "PLAY")
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close log file", "error", err)
		}
	}()

	round, seed, err := newRound(cfg, logger, nil)
	if err != nil {
		return err
	}

	logger.Info("Starting session",
		"decks", cfg.Game.Decks,
		"multiplier", cfg.Game.BlackjackMultiplier,
		"seed", seed)

	if c.NoColor {
		tui.DisableColor()
	}

	program := tea.NewProgram(tui.NewModel(round, logger), tea.WithAltScreen())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		_, err := program.Run()
		return err
	})

	g.Go(func() error {
		select {
		case <-ctx.Done():
			logger.Info("Received signal, shutting down")
			program.Quit()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Session ended", "round", round.ID(), "result", round.Result())
	return nil
}
