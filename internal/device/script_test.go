package device

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cardbank/internal/services/input"
	"github.com/mcoot/cardbank/internal/testutil"
)

type ScriptSuite struct {
	suite.Suite
	ctx context.Context
}

func TestScriptSuite(t *testing.T) {
	suite.Run(t, new(ScriptSuite))
}

func (s *ScriptSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ScriptSuite) load(text string) *Script {
	script, err := LoadScript(strings.NewReader(text))
	s.Require().NoError(err)
	return script
}

func (s *ScriptSuite) TestStepsAreReleasedBetween() {
	script := s.load("up 2\npress\n")
	th := input.DefaultThresholds()

	s.True(input.Classify(script.Sample(), th).Up)
	s.True(input.Classify(script.Sample(), th).Idle())
	s.True(input.Classify(script.Sample(), th).Idle())
	s.True(input.Classify(script.Sample(), th).Up)
	s.True(input.Classify(script.Sample(), th).Idle())
	s.True(input.Classify(script.Sample(), th).Idle())
	s.True(input.Classify(script.Sample(), th).Pressed)
	s.True(input.Classify(script.Sample(), th).Idle())
	s.True(input.Classify(script.Sample(), th).Idle())
	s.True(input.Classify(script.Sample(), th).Idle())
}

func (s *ScriptSuite) TestDirections() {
	script := s.load("down\nleft\nright\n")
	th := input.DefaultThresholds()

	s.Equal(input.EventDown, input.Classify(script.Sample(), th).Direction())
	script.Sample()
	script.Sample()
	s.Equal(input.EventLeft, input.Classify(script.Sample(), th).Direction())
	script.Sample()
	script.Sample()
	s.Equal(input.EventRight, input.Classify(script.Sample(), th).Direction())
}

func (s *ScriptSuite) TestScansQueuedSeparately() {
	script := s.load("# setup\nscan 04 A2 3F 10\nup\nscan 11 9c 02 20  # second card\n")

	steps, scans := script.Remaining()
	s.Equal(1, steps)
	s.Equal(2, scans)

	id, ok := script.TryReadIdentity()
	s.Require().True(ok)
	s.Equal("04 A2 3F 10", id.String())

	id, ok = script.TryReadIdentity()
	s.Require().True(ok)
	s.Equal("11 9C 02 20", id.String())

	_, ok = script.TryReadIdentity()
	s.False(ok)
}

func (s *ScriptSuite) TestBadLines() {
	for _, line := range []string{"jump", "up zero", "press -1", "scan", "scan 0G"} {
		err := NewScript().Feed(line)
		s.ErrorIs(err, ErrBadScript, line)
	}
}

func (s *ScriptSuite) TestLoadScriptReportsLineNumber() {
	_, err := LoadScript(strings.NewReader("up\n\nwiggle\n"))
	s.ErrorIs(err, ErrBadScript)
	s.Contains(err.Error(), "line 3")
}

func (s *ScriptSuite) TestHookFollowsLastPolledSource() {
	script := s.load("press\nscan 01 02 03 04\n")

	// Joystick still has a step queued
	script.Sample()
	s.NoError(script.Hook(s.ctx))

	// Consumed, but the release sample is still pending
	s.NoError(script.Hook(s.ctx))
	script.Sample()
	s.ErrorIs(script.Hook(s.ctx), ErrScriptExhausted)

	// The reader still has a card
	_, ok := script.TryReadIdentity()
	s.True(ok)
	s.ErrorIs(script.Hook(s.ctx), ErrScriptExhausted)
}

func (s *ScriptSuite) TestHookWaitsWhileOpen() {
	script := NewScript()
	script.Sample()
	s.NoError(script.Hook(s.ctx))

	script.Close()
	s.ErrorIs(script.Hook(s.ctx), ErrScriptExhausted)
}

func TestStreamScript(t *testing.T) {
	script := StreamScript(context.Background(), strings.NewReader("up\nscan 01 02 03 04\n"), testutil.NopLogger())

	require.Eventually(t, func() bool {
		script.TryReadIdentity()
		return script.Exhausted()
	}, time.Second, time.Millisecond)

	steps, scans := script.Remaining()
	assert.Equal(t, 1, steps)
	assert.Equal(t, 0, scans)
}

func TestStreamScriptReportsBadLine(t *testing.T) {
	script := StreamScript(context.Background(), strings.NewReader("wiggle\n"), testutil.NopLogger())

	require.Eventually(t, func() bool {
		return script.Hook(context.Background()) != nil
	}, time.Second, time.Millisecond)
	assert.ErrorIs(t, script.Hook(context.Background()), ErrBadScript)
}
