// Package input turns raw joystick samples into discrete, debounced events.
package input

// Event is a discrete input produced by the joystick
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventPress
)

// String returns the event name
func (e Event) String() string {
	switch e {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventPress:
		return "press"
	default:
		return "none"
	}
}

// AxisMax is the top of the analog range
const AxisMax = 1023

// AxisCenter is the resting position of a centred stick
const AxisCenter = 512

// Sample is one raw reading of the joystick
type Sample struct {
	X int // 0-1023, high is left
	Y int // 0-1023, high is up

	// Button is the level of the pulled-up switch line. The switch is
	// active-low, so false means pressed.
	Button bool
}

// Neutral returns a centred, released sample
func Neutral() Sample {
	return Sample{X: AxisCenter, Y: AxisCenter, Button: true}
}

// Thresholds decide when an axis reading counts as a deflection
type Thresholds struct {
	High int // Readings above High deflect toward up/left
	Low  int // Readings below Low deflect toward down/right
}

// DefaultThresholds returns the thresholds for a 10-bit analog stick
func DefaultThresholds() Thresholds {
	return Thresholds{High: 900, Low: 200}
}

// State is the classified form of a Sample
type State struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Pressed bool
}

// Classify converts a raw sample into directional and press state
func Classify(s Sample, th Thresholds) State {
	return State{
		Up:      s.Y > th.High,
		Down:    s.Y < th.Low,
		Left:    s.X > th.High,
		Right:   s.X < th.Low,
		Pressed: !s.Button,
	}
}

// Direction returns the single direction held, checked in the fixed
// priority order up, down, left, right
func (s State) Direction() Event {
	switch {
	case s.Up:
		return EventUp
	case s.Down:
		return EventDown
	case s.Left:
		return EventLeft
	case s.Right:
		return EventRight
	default:
		return EventNone
	}
}

// Holds returns true while the condition that produced ev is still active
func (s State) Holds(ev Event) bool {
	switch ev {
	case EventUp:
		return s.Up
	case EventDown:
		return s.Down
	case EventLeft:
		return s.Left
	case EventRight:
		return s.Right
	case EventPress:
		return s.Pressed
	default:
		return false
	}
}

// Idle returns true when nothing is deflected or pressed
func (s State) Idle() bool {
	return !s.Up && !s.Down && !s.Left && !s.Right && !s.Pressed
}
