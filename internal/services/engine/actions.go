package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/cardbank/internal/model"
	"github.com/mcoot/cardbank/internal/services/entry"
	"github.com/mcoot/cardbank/internal/services/registry"
)

// Banking rules
const (
	PassGoBonus int64 = 200
	HouseTax    int64 = 40
	HotelTax    int64 = 115
)

// IncomeTax returns a tenth of balance, truncated toward zero. A negative
// balance gives a negative tax, so paying it raises the balance.
func IncomeTax(balance int64) int64 {
	return balance / 10
}

// PropertyTax returns the tax owed on the given buildings
func PropertyTax(houses, hotels int64) int64 {
	return HouseTax*houses + HotelTax*hotels
}

// Action is one menu entry and the handler that performs it
type Action struct {
	ID    model.ActionID
	Label string
	Run   func(ctx context.Context) error
}

func (c *Controller) actionTable() []Action {
	return []Action{
		{ID: model.ActionViewBalance, Label: "View Balance", Run: c.viewBalance},
		{ID: model.ActionPassGo, Label: "Pass Go", Run: c.passGo},
		{ID: model.ActionCollect, Label: "Collect money", Run: c.collect},
		{ID: model.ActionPayBank, Label: "Pay to bank", Run: c.payBank},
		{ID: model.ActionTransfer, Label: "Transaction", Run: c.transfer},
		{ID: model.ActionIncomeTax, Label: "Income Tax 10%", Run: c.incomeTax},
		{ID: model.ActionPropertyTax, Label: "House/HotelTax", Run: c.propertyTax},
	}
}

func (c *Controller) viewBalance(ctx context.Context) error {
	idx, err := c.scanPlayer(ctx, textScanCard, registry.Unassigned)
	if err != nil {
		return err
	}
	balance, err := c.registry.Balance(idx)
	if err != nil {
		return err
	}

	c.show(fmt.Sprintf("Balance: %d$", balance))
	c.logCompleted(model.ActionViewBalance, idx, 0, balance)
	return nil
}

func (c *Controller) passGo(ctx context.Context) error {
	idx, err := c.scanPlayer(ctx, textScanCard, registry.Unassigned)
	if err != nil {
		return err
	}
	balance, err := c.registry.Credit(idx, PassGoBonus)
	if err != nil {
		return err
	}

	c.show(fmt.Sprintf("$%d added!", PassGoBonus))
	c.logCompleted(model.ActionPassGo, idx, PassGoBonus, balance)
	return nil
}

func (c *Controller) collect(ctx context.Context) error {
	idx, err := c.scanPlayer(ctx, textScanCard, registry.Unassigned)
	if err != nil {
		return err
	}
	amount, err := c.promptAmount(ctx)
	if err != nil {
		return err
	}
	balance, err := c.registry.Credit(idx, amount)
	if err != nil {
		return err
	}

	c.show(fmt.Sprintf("$%d added!", amount))
	c.logCompleted(model.ActionCollect, idx, amount, balance)
	return nil
}

func (c *Controller) payBank(ctx context.Context) error {
	idx, err := c.scanPlayer(ctx, textScanCard, registry.Unassigned)
	if err != nil {
		return err
	}
	amount, err := c.promptAmount(ctx)
	if err != nil {
		return err
	}
	balance, err := c.registry.Debit(idx, amount)
	if err != nil {
		return err
	}

	c.show(fmt.Sprintf("$%d paid!", amount))
	c.logCompleted(model.ActionPayBank, idx, amount, balance)
	return nil
}

func (c *Controller) transfer(ctx context.Context) error {
	sender, err := c.scanPlayer(ctx, textScanSender, registry.Unassigned)
	if err != nil {
		return err
	}
	if err := c.confirmScan(ctx); err != nil {
		return err
	}

	recipient, err := c.scanPlayer(ctx, textScanRecipient, sender)
	if err != nil {
		return err
	}
	amount, err := c.promptAmount(ctx)
	if err != nil {
		return err
	}
	if err := c.registry.Transfer(sender, recipient, amount); err != nil {
		return err
	}

	senderBalance, err := c.registry.Balance(sender)
	if err != nil {
		return err
	}
	recipientBalance, err := c.registry.Balance(recipient)
	if err != nil {
		return err
	}

	c.show(fmt.Sprintf("$%d paid!", amount))
	c.logger.Info("action completed",
		slog.String("action", string(model.ActionTransfer)),
		slog.Int("sender", sender),
		slog.Int("recipient", recipient),
		slog.Int64("amount", amount),
		slog.Int64("sender_balance", senderBalance),
		slog.Int64("recipient_balance", recipientBalance),
	)
	return nil
}

func (c *Controller) incomeTax(ctx context.Context) error {
	idx, err := c.scanPlayer(ctx, textScanCard, registry.Unassigned)
	if err != nil {
		return err
	}
	balance, err := c.registry.Balance(idx)
	if err != nil {
		return err
	}
	tax := IncomeTax(balance)
	if balance, err = c.registry.Debit(idx, tax); err != nil {
		return err
	}

	c.show(fmt.Sprintf("$%d paid!", tax))
	c.logCompleted(model.ActionIncomeTax, idx, tax, balance)
	return nil
}

func (c *Controller) propertyTax(ctx context.Context) error {
	idx, err := c.scanPlayer(ctx, textScanCard, registry.Unassigned)
	if err != nil {
		return err
	}
	if err := c.confirmScan(ctx); err != nil {
		return err
	}

	houses, err := c.promptNumber(ctx, numberPrompt{
		label:  textHouses,
		hint:   hintUpDown,
		widget: entry.Counter(c.cfg),
		repeat: true,
	})
	if err != nil {
		return err
	}
	if err := c.poller.WaitRelease(ctx); err != nil {
		return err
	}
	hotels, err := c.promptNumber(ctx, numberPrompt{
		label:  textHotels,
		hint:   hintUpDown,
		widget: entry.Counter(c.cfg),
		repeat: true,
	})
	if err != nil {
		return err
	}

	tax := PropertyTax(houses, hotels)
	balance, err := c.registry.Debit(idx, tax)
	if err != nil {
		return err
	}

	c.show(fmt.Sprintf("$%d paid!", tax))
	c.logger.Info("action completed",
		slog.String("action", string(model.ActionPropertyTax)),
		slog.Int("slot", idx),
		slog.Int64("houses", houses),
		slog.Int64("hotels", hotels),
		slog.Int64("amount", tax),
		slog.Int64("balance", balance),
	)
	return nil
}

func (c *Controller) logCompleted(action model.ActionID, slot int, amount, balance int64) {
	c.logger.Info("action completed",
		slog.String("action", string(action)),
		slog.Int("slot", slot),
		slog.Int64("amount", amount),
		slog.Int64("balance", balance),
	)
}
