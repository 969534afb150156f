package engine

import (
	"context"

	"github.com/mcoot/cardbank/internal/services/input"
	"github.com/mcoot/cardbank/internal/services/menu"
)

// Menu layout
const (
	cursorMarker = ">"
	labelColumn  = 2
)

// cycle runs one menu round: choose an action, run it, wait for exit
func (c *Controller) cycle(ctx context.Context) error {
	labels := make([]string, len(c.actions))
	for i, a := range c.actions {
		labels[i] = a.Label
	}

	idx, err := c.navigate(ctx, menu.New(labels, c.cfg.DisplayRows))
	if err != nil {
		return err
	}

	action := c.actions[idx]
	if err := action.Run(ctx); err != nil {
		return err
	}
	c.lastAction = action.ID
	c.actionCount++
	c.persist(ctx)

	return c.awaitExit(ctx)
}

// navigate moves through the menu until an entry is pressed
func (c *Controller) navigate(ctx context.Context, nav *menu.Navigator) (int, error) {
	c.renderMenu(nav)
	for {
		ev, err := c.poller.NextEdge(ctx)
		if err != nil {
			return 0, err
		}

		moved := false
		switch ev {
		case input.EventPress:
			return nav.Selected(), nil
		case input.EventUp:
			moved = nav.MoveUp()
		case input.EventDown:
			moved = nav.MoveDown()
		}
		if moved {
			c.renderMenu(nav)
		}
	}
}

func (c *Controller) renderMenu(nav *menu.Navigator) {
	c.display.Clear()
	for row, label := range nav.Visible() {
		c.display.WriteAt(row, labelColumn, label)
	}
	c.display.WriteAt(nav.Cursor(), 0, cursorMarker)
}
