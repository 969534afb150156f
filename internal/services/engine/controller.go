// Package engine runs the banking terminal: session setup, the action menu,
// and every action's scan, prompt, and balance update.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/cardbank/internal/config"
	"github.com/mcoot/cardbank/internal/dependencies/clock"
	"github.com/mcoot/cardbank/internal/dependencies/random"
	"github.com/mcoot/cardbank/internal/model"
	"github.com/mcoot/cardbank/internal/services/input"
	"github.com/mcoot/cardbank/internal/services/registry"
	"github.com/mcoot/cardbank/internal/storage"
)

// sessionIDLength is the length of generated session IDs
const sessionIDLength = 12

// Display is the write-only text sink the terminal renders to
type Display interface {
	Clear()
	WriteAt(row, col int, text string)
}

// IdentitySource is a non-blocking token reader
type IdentitySource interface {
	TryReadIdentity() (model.Identity, bool)
}

// Devices are the terminal's hardware collaborators
type Devices struct {
	Joystick input.Source
	Reader   IdentitySource
	Display  Display

	// Hook, if set, runs on every idle poll and can abandon the session
	Hook input.Hook
}

// Controller owns one power-on session of the terminal. It is driven
// entirely from the goroutine that calls Run.
type Controller struct {
	cfg      config.Terminal
	poller   *input.Poller
	reader   IdentitySource
	display  Display
	storage  storage.Storage
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
	actions  []Action
	registry *registry.Registry

	// Session state mirrored to storage
	id              model.SessionID
	phase           model.Phase
	startingBalance int64
	lastAction      model.ActionID
	actionCount     int
	createdAt       time.Time
}

// NewController creates a Controller for a fresh session
func NewController(
	cfg config.Terminal,
	devices Devices,
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	poller := input.NewPoller(devices.Joystick, input.Config{
		Thresholds: input.Thresholds{High: cfg.AxisHigh, Low: cfg.AxisLow},
		Cadence:    cfg.PollCadence,
		Interval:   cfg.SampleInterval,
		Settle:     cfg.ExitSettle,
	}, clock)
	poller.SetHook(devices.Hook)

	c := &Controller{
		cfg:     cfg,
		poller:  poller,
		reader:  devices.Reader,
		display: devices.Display,
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
		phase:   model.PhaseSelectPlayers,
	}
	c.actions = c.actionTable()
	return c
}

// Run sets up the session then serves the menu until the context is
// cancelled or the device hook gives up. It only returns with an error.
func (c *Controller) Run(ctx context.Context) error {
	c.id = model.SessionID(c.random.Token(sessionIDLength))
	c.createdAt = c.clock.Now()

	c.logger.Info("session started", slog.String("session_id", string(c.id)))

	if err := c.setup(ctx); err != nil {
		return err
	}
	for {
		if err := c.cycle(ctx); err != nil {
			return err
		}
	}
}

// Registry returns the session's ledger, or nil before the player count is chosen
func (c *Controller) Registry() *registry.Registry {
	return c.registry
}

// Actions returns the menu's action table in display order
func (c *Controller) Actions() []Action {
	return c.actions
}

// Snapshot returns the current session state
func (c *Controller) Snapshot() *model.Session {
	session := &model.Session{
		ID:              c.id,
		Phase:           c.phase,
		StartingBalance: c.startingBalance,
		LastAction:      c.lastAction,
		ActionCount:     c.actionCount,
		CreatedAt:       c.createdAt,
		UpdatedAt:       c.clock.Now(),
	}
	if c.registry != nil {
		session.NumPlayers = c.registry.Size()
		session.Slots = c.registry.Slots()
	}
	return session
}

// persist mirrors the session to storage. The mirror is best effort; the
// in-memory registry stays authoritative.
func (c *Controller) persist(ctx context.Context) {
	if c.storage == nil {
		return
	}
	if err := c.storage.SaveSession(ctx, c.Snapshot()); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(c.id)),
			slog.String("error", err.Error()),
		)
	}
}

func (c *Controller) setPhase(ctx context.Context, phase model.Phase) {
	c.phase = phase
	c.persist(ctx)
}
