package input

import (
	"context"
	"time"

	"github.com/mcoot/cardbank/internal/dependencies/clock"
)

// Source produces raw joystick samples. Implementations must not block.
type Source interface {
	Sample() Sample
}

// Hook is called on every idle poll tick. Returning an error abandons the
// wait and the error is passed back to the caller unchanged.
type Hook func(ctx context.Context) error

// Config controls sampling and debounce timing
type Config struct {
	Thresholds Thresholds

	// Cadence is the pause after each repeat-mode event
	Cadence time.Duration

	// Interval is the pause between samples while waiting
	Interval time.Duration

	// Settle is the pause after a full press-release confirmation
	Settle time.Duration
}

// DefaultConfig returns the standard timing for the terminal
func DefaultConfig() Config {
	return Config{
		Thresholds: DefaultThresholds(),
		Cadence:    200 * time.Millisecond,
		Interval:   5 * time.Millisecond,
		Settle:     500 * time.Millisecond,
	}
}

// Poller turns a Source into debounced events. It is driven entirely by the
// caller's goroutine; every wait is a sample-check-sleep loop.
type Poller struct {
	source Source
	cfg    Config
	clock  clock.Clock
	hook   Hook
}

// NewPoller creates a Poller over the given source
func NewPoller(source Source, cfg Config, clk clock.Clock) *Poller {
	return &Poller{
		source: source,
		cfg:    cfg,
		clock:  clk,
	}
}

// SetHook installs a check that runs on every idle tick, alongside
// context cancellation
func (p *Poller) SetHook(hook Hook) {
	p.hook = hook
}

// State samples the source once
func (p *Poller) State() State {
	return Classify(p.source.Sample(), p.cfg.Thresholds)
}

// Check reports context cancellation or a hook error
func (p *Poller) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.hook != nil {
		return p.hook(ctx)
	}
	return nil
}

// Idle runs the idle checks then sleeps for one sample interval
func (p *Poller) Idle(ctx context.Context) error {
	if err := p.Check(ctx); err != nil {
		return err
	}
	p.clock.Sleep(p.cfg.Interval)
	return nil
}

// Pause sleeps for d, checking for cancellation first
func (p *Poller) Pause(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.clock.Sleep(d)
	return nil
}

// NextEdge waits for an edge-triggered event. A direction is reported once
// the stick returns from it; a press is reported once the button is released.
func (p *Poller) NextEdge(ctx context.Context) (Event, error) {
	for {
		st := p.State()
		if st.Pressed {
			return EventPress, p.waitClear(ctx, EventPress)
		}
		if ev := st.Direction(); ev != EventNone {
			return ev, p.waitClear(ctx, ev)
		}
		if err := p.Idle(ctx); err != nil {
			return EventNone, err
		}
	}
}

// NextRepeat waits for a level-triggered event. A held direction repeats
// once per cadence; a press still waits for release so it fires only once.
func (p *Poller) NextRepeat(ctx context.Context) (Event, error) {
	for {
		st := p.State()
		if st.Pressed {
			return EventPress, p.waitClear(ctx, EventPress)
		}
		if ev := st.Direction(); ev != EventNone {
			p.clock.Sleep(p.cfg.Cadence)
			return ev, nil
		}
		if err := p.Idle(ctx); err != nil {
			return EventNone, err
		}
	}
}

// WaitRelease blocks until the button is not pressed
func (p *Poller) WaitRelease(ctx context.Context) error {
	return p.waitClear(ctx, EventPress)
}

// WaitConfirm blocks for a full press: any press already held is released,
// then a fresh press and release are required, then the stick is given
// time to settle so the enclosing loop cannot see the same press again.
func (p *Poller) WaitConfirm(ctx context.Context) error {
	if err := p.WaitRelease(ctx); err != nil {
		return err
	}
	for !p.State().Pressed {
		if err := p.Idle(ctx); err != nil {
			return err
		}
	}
	if err := p.WaitRelease(ctx); err != nil {
		return err
	}
	return p.Pause(ctx, p.cfg.Settle)
}

func (p *Poller) waitClear(ctx context.Context, ev Event) error {
	for p.State().Holds(ev) {
		if err := p.Idle(ctx); err != nil {
			return err
		}
	}
	return nil
}
