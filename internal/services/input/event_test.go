package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name   string
		sample Sample
		want   State
	}{
		{"neutral", Neutral(), State{}},
		{"up", Sample{X: 512, Y: 1000, Button: true}, State{Up: true}},
		{"down", Sample{X: 512, Y: 100, Button: true}, State{Down: true}},
		{"left", Sample{X: 1000, Y: 512, Button: true}, State{Left: true}},
		{"right", Sample{X: 50, Y: 512, Button: true}, State{Right: true}},
		{"pressed is active low", Sample{X: 512, Y: 512, Button: false}, State{Pressed: true}},
		{"thresholds are exclusive", Sample{X: 200, Y: 900, Button: true}, State{}},
		{"diagonal", Sample{X: 1023, Y: 1023, Button: true}, State{Up: true, Left: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.sample, th))
		})
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	th := Thresholds{High: 600, Low: 400}
	st := Classify(Sample{X: 512, Y: 700, Button: true}, th)
	assert.True(t, st.Up)
}

func TestDirectionPriority(t *testing.T) {
	assert.Equal(t, EventUp, State{Up: true, Down: true, Left: true, Right: true}.Direction())
	assert.Equal(t, EventDown, State{Down: true, Left: true}.Direction())
	assert.Equal(t, EventLeft, State{Left: true, Right: true}.Direction())
	assert.Equal(t, EventRight, State{Right: true}.Direction())
	assert.Equal(t, EventNone, State{Pressed: true}.Direction())
}

func TestStateHoldsAndIdle(t *testing.T) {
	st := State{Down: true}
	assert.True(t, st.Holds(EventDown))
	assert.False(t, st.Holds(EventUp))
	assert.False(t, st.Holds(EventNone))
	assert.False(t, st.Idle())
	assert.True(t, State{}.Idle())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "up", EventUp.String())
	assert.Equal(t, "press", EventPress.String())
	assert.Equal(t, "none", Event(99).String())
}
