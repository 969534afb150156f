package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/cardbank/internal/model"
	"github.com/mcoot/cardbank/internal/services/entry"
	"github.com/mcoot/cardbank/internal/services/registry"
)

// Screen text
const (
	textScanCard      = "Scan card: "
	textScanSender    = "Scan sender: "
	textScanRecipient = "Scan recipient: "
	textInvalidCard   = "Invalid card"
	textSameAsSender  = "Same as sender!"
	textSuccess       = "Success!"
	textPressToExit   = "Press to exit"
	textAmount        = "Amount $: "
	textHouses        = "Houses: "
	textHotels        = "Hotels: "
	hintAmount        = "Joystick U/D L/R"
	hintUpDown        = "Joystick up/down"
)

// numberPrompt describes one numeric entry screen
type numberPrompt struct {
	label  string
	hint   string
	widget entry.Config

	// repeat makes a held direction step once per poll cadence instead of
	// once per deflection
	repeat bool
}

// promptNumber runs an entry widget until the operator confirms
func (c *Controller) promptNumber(ctx context.Context, p numberPrompt) (int64, error) {
	w := entry.New(p.widget)
	paint := func() {
		c.display.Clear()
		c.display.WriteAt(0, 0, p.label)
		c.display.WriteAt(1, 0, p.hint)
	}

	paint()
	for {
		c.display.WriteAt(0, len(p.label), w.Text())

		next := c.poller.NextEdge
		if p.repeat {
			next = c.poller.NextRepeat
		}
		ev, err := next(ctx)
		if err != nil {
			return 0, err
		}

		tick := w.Handle(ev)
		if tick.Done {
			c.display.Clear()
			return tick.Value, nil
		}
		if tick.WidthChanged {
			paint()
		}
	}
}

// promptAmount asks for a transaction amount
func (c *Controller) promptAmount(ctx context.Context) (int64, error) {
	return c.promptNumber(ctx, numberPrompt{
		label:  textAmount,
		hint:   hintAmount,
		widget: entry.Amount(c.cfg),
		repeat: true,
	})
}

// waitIdentity polls the reader until a token is presented
func (c *Controller) waitIdentity(ctx context.Context) (model.Identity, error) {
	for {
		if id, ok := c.reader.TryReadIdentity(); ok {
			return id, nil
		}
		if err := c.poller.Idle(ctx); err != nil {
			return nil, err
		}
	}
}

// scanPlayer prompts until an enrolled card other than exclude is scanned
// and returns its slot. Pass registry.Unassigned to accept any player.
func (c *Controller) scanPlayer(ctx context.Context, prompt string, exclude int) (int, error) {
	for {
		c.display.Clear()
		c.display.WriteAt(0, 0, prompt)

		id, err := c.waitIdentity(ctx)
		if err != nil {
			return registry.Unassigned, err
		}

		idx, err := c.registry.Resolve(id)
		if err == nil && idx == exclude {
			err = model.ErrSameRecipientAsSender
		}
		if err == nil {
			return idx, nil
		}

		notice := textInvalidCard
		switch {
		case errors.Is(err, model.ErrSameRecipientAsSender):
			notice = textSameAsSender
		case !errors.Is(err, model.ErrUnassignedCard) && !errors.Is(err, model.ErrInvalidIdentity):
			return registry.Unassigned, err
		}

		c.logger.Warn("card rejected",
			slog.String("identity", id.String()),
			slog.String("reason", err.Error()),
		)
		c.display.WriteAt(1, 0, notice)
		if err := c.poller.Pause(ctx, c.cfg.InvalidCardDelay); err != nil {
			return registry.Unassigned, err
		}
	}
}

// confirmScan shows a short success notice under a completed scan
func (c *Controller) confirmScan(ctx context.Context) error {
	c.display.WriteAt(1, 0, textSuccess)
	return c.poller.Pause(ctx, c.cfg.SuccessDelay)
}

// awaitExit holds the result screen until a full press and release
func (c *Controller) awaitExit(ctx context.Context) error {
	c.display.WriteAt(1, 0, textPressToExit)
	return c.poller.WaitConfirm(ctx)
}

// show replaces the screen with a single line
func (c *Controller) show(text string) {
	c.display.Clear()
	c.display.WriteAt(0, 0, text)
}
