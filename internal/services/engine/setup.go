package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/cardbank/internal/model"
	"github.com/mcoot/cardbank/internal/services/entry"
	"github.com/mcoot/cardbank/internal/services/registry"
)

const (
	textPlayers       = "Players: "
	textStartingMoney = "Start $: "
	textScanNth       = "Scan card %d"
	textCardUsed      = "Card already used!"
)

// setup runs the power-on sequence: player count, enrollment, starting balance
func (c *Controller) setup(ctx context.Context) error {
	players, err := c.promptNumber(ctx, numberPrompt{
		label:  textPlayers,
		hint:   hintUpDown,
		widget: entry.PlayerCount(c.cfg),
	})
	if err != nil {
		return err
	}

	reg, err := registry.New(int(players), c.logger)
	if err != nil {
		return err
	}
	c.registry = reg
	c.setPhase(ctx, model.PhaseEnrolling)

	if err := c.enroll(ctx); err != nil {
		return err
	}
	c.setPhase(ctx, model.PhaseStartingBalance)

	start, err := c.promptNumber(ctx, numberPrompt{
		label:  textStartingMoney,
		hint:   hintUpDown,
		widget: entry.StartingBalance(c.cfg),
		repeat: true,
	})
	if err != nil {
		return err
	}
	c.registry.SetBalances(start)
	c.startingBalance = start

	// The confirming press must not select a menu entry
	if err := c.poller.WaitRelease(ctx); err != nil {
		return err
	}

	c.logger.Info("session ready",
		slog.String("session_id", string(c.id)),
		slog.Int("players", c.registry.Size()),
		slog.Int64("starting_balance", start),
	)
	c.setPhase(ctx, model.PhaseMenu)
	return nil
}

// enroll asks for one new card per slot. Rescanning an enrolled card is
// reported and does not advance.
func (c *Controller) enroll(ctx context.Context) error {
	for !c.registry.Enrolled() {
		c.show(fmt.Sprintf(textScanNth, c.registry.Assigned()+1))

		id, err := c.waitIdentity(ctx)
		if err != nil {
			return err
		}

		_, err = c.registry.Enroll(id)
		switch {
		case err == nil:
			c.display.WriteAt(1, 0, textSuccess)
		case errors.Is(err, model.ErrDuplicateEnrollment):
			c.logger.Warn("duplicate card during enrollment", slog.String("identity", id.String()))
			c.display.WriteAt(1, 0, textCardUsed)
		case errors.Is(err, model.ErrInvalidIdentity):
			c.logger.Warn("card rejected",
				slog.String("identity", id.String()),
				slog.String("reason", err.Error()),
			)
			c.display.WriteAt(1, 0, textInvalidCard)
		default:
			return err
		}

		if err := c.poller.Pause(ctx, c.cfg.InvalidCardDelay); err != nil {
			return err
		}
	}
	c.display.Clear()
	return nil
}
