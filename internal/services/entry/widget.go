// Package entry implements the bounded numeric stepper used for every
// number the operator types in with the joystick.
package entry

import (
	"strconv"

	"github.com/mcoot/cardbank/internal/services/input"
)

// Config describes the bounds and step sizes of a widget
type Config struct {
	Min     int64
	Max     int64
	Initial int64

	// CoarseStep is applied by up/down. Zero means the widget has no coarse
	// step, in which case up/down use FineStep and left/right do nothing.
	CoarseStep int64

	// FineStep is applied by left/right, or by up/down when CoarseStep is zero
	FineStep int64
}

// Tick is the outcome of feeding one event to a widget
type Tick struct {
	Value int64

	// WidthChanged is set when the rendered value has a different number of
	// characters than before the event
	WidthChanged bool

	// Done is set on confirm; the widget should be discarded
	Done bool
}

// Widget is a bounded integer stepper. Value stays within [Min, Max].
type Widget struct {
	cfg   Config
	value int64
}

// New creates a widget starting at cfg.Initial, clamped into bounds
func New(cfg Config) *Widget {
	w := &Widget{cfg: cfg, value: cfg.Initial}
	if w.value < cfg.Min {
		w.value = cfg.Min
	}
	if w.value > cfg.Max {
		w.value = cfg.Max
	}
	return w
}

// Value returns the current value
func (w *Widget) Value() int64 {
	return w.value
}

// Text returns the current value as displayed
func (w *Widget) Text() string {
	return strconv.FormatInt(w.value, 10)
}

// Handle applies one event and reports the new state
func (w *Widget) Handle(ev input.Event) Tick {
	before := len(w.Text())

	switch ev {
	case input.EventPress:
		return Tick{Value: w.value, Done: true}
	case input.EventUp:
		w.stepUp(w.verticalStep())
	case input.EventDown:
		w.stepDown(w.verticalStep())
	case input.EventLeft:
		if w.hasFineAxis() {
			w.stepDown(w.cfg.FineStep)
		}
	case input.EventRight:
		if w.hasFineAxis() {
			w.stepUp(w.cfg.FineStep)
		}
	}

	return Tick{Value: w.value, WidthChanged: len(w.Text()) != before}
}

func (w *Widget) verticalStep() int64 {
	if w.cfg.CoarseStep > 0 {
		return w.cfg.CoarseStep
	}
	return w.cfg.FineStep
}

func (w *Widget) hasFineAxis() bool {
	return w.cfg.CoarseStep > 0 && w.cfg.FineStep > 0
}

// stepUp adds step only if the result stays within Max
func (w *Widget) stepUp(step int64) {
	if step > 0 && w.value+step <= w.cfg.Max {
		w.value += step
	}
}

// stepDown subtracts step only if the result stays within Min
func (w *Widget) stepDown(step int64) {
	if step > 0 && w.value-step >= w.cfg.Min {
		w.value -= step
	}
}
