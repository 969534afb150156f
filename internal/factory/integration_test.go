package factory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cardbank/internal/config"
	"github.com/mcoot/cardbank/internal/device"
	"github.com/mcoot/cardbank/internal/model"
	"github.com/mcoot/cardbank/internal/services/engine"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) play(script string) (*engine.Controller, *device.Screen) {
	sc, err := device.LoadScript(strings.NewReader(script))
	s.Require().NoError(err)

	screen := device.NewScreen(s.app.Terminal.DisplayRows, s.app.Terminal.DisplayCols)
	controller := s.app.NewController(engine.Devices{
		Joystick: sc,
		Reader:   sc,
		Display:  screen,
		Hook:     sc.Hook,
	})
	s.Require().ErrorIs(controller.Run(s.ctx), device.ErrScriptExhausted)
	return controller, screen
}

// Test: A full evening of play is mirrored to storage after every action
func (s *IntegrationSuite) TestSessionMirroredToStorage() {
	s.app.MockRandom.QueueToken("EVENING00001")

	script := `
down 2
press
scan 04 A2 3F
scan 11 9C 02
press

# Collect 250
down 2
press
scan 11 9C 02
up 2
right 50
press
press

# View the balance and leave it on screen
press
scan 11 9C 02
`
	_, screen := s.play(script)
	s.Equal([]string{"Balance: 1750$", "Press to exit"}, screen.Lines())

	session, err := s.app.Storage.GetLatestSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.SessionID("EVENING00001"), session.ID)
	s.Equal(2, session.ActionCount)
	s.Equal(model.ActionViewBalance, session.LastAction)
	s.Equal(int64(1750), session.Slots[1].Balance)
	s.True(session.UpdatedAt.After(session.CreatedAt))
}

// Test: Every delay the terminal takes goes through the injected clock
func (s *IntegrationSuite) TestInvalidCardDelayUsesClock() {
	start := s.app.MockClock.Now()

	s.play("down 2\npress\nscan 04 A2 3F\nscan 04 A2 3F\n")

	s.True(s.app.MockClock.SleptFor(1500 * time.Millisecond))
	s.True(s.app.MockClock.Now().Sub(start) >= 3*time.Second)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "sqlite"})
	assert.Error(t, err)
}

func TestNewRejectsInvalidTerminal(t *testing.T) {
	cfg := config.Default()
	cfg.MinPlayers = 1

	_, err := New(Config{Terminal: &cfg})
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.Equal(t, config.Default(), app.Terminal)
	assert.NotNil(t, app.Storage)
}
