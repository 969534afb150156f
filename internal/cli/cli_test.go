package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cardbank/internal/api/response"
)

const eveningScript = `# three players
down
press
scan 04 A2 3F
scan 11 9C 02
scan 7E 00 13
press

# Pass Go for the first player
down
press
scan 04 A2 3F
press

# Transfer 500 from the first player to the second
down 4
press
scan 04 A2 3F
scan 11 9C 02
up 5
press
press

# Income tax for the second player
down 5
press
scan 11 9C 02
press
`

type CLISuite struct {
	suite.Suite
	dir string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("CARDBANK_ENV_FILE", filepath.Join(s.dir, "missing.env"))
}

func (s *CLISuite) writeScript(text string) string {
	path := filepath.Join(s.dir, "session.txt")
	s.Require().NoError(os.WriteFile(path, []byte(text), 0o600))
	return path
}

// execute runs the CLI and returns stdout and stderr
func (s *CLISuite) execute(stdin string, args ...string) (string, string, error) {
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (s *CLISuite) TestRunPrintsLedgerAsJSON() {
	path := s.writeScript(eveningScript)

	stdout, stderr, err := s.execute("", "run", "--script", path, "--no-delay", "-o", "json")
	s.Require().NoError(err)

	var session response.Session
	s.Require().NoError(json.Unmarshal([]byte(stdout), &session))
	s.Equal("menu", session.Phase)
	s.Equal(3, session.ActionCount)
	s.Require().Len(session.Slots, 3)
	s.Equal(int64(1200), session.Slots[0].Balance)
	s.Equal(int64(1800), session.Slots[1].Balance)
	s.Equal(int64(1500), session.Slots[2].Balance)
	s.Equal(int64(4500), session.TotalMoney)

	// The display is drawn on stderr
	s.Contains(stderr, "|$200 added!")
	s.Contains(stderr, "|Press to exit")
}

func (s *CLISuite) TestRunPrintsLedgerAsText() {
	path := s.writeScript(eveningScript)

	stdout, _, err := s.execute("", "run", "--script", path, "--no-delay")
	s.Require().NoError(err)

	s.Contains(stdout, "Phase: menu")
	s.Contains(stdout, "Players: 3")
	s.Contains(stdout, "Last action: income_tax (3 total)")
	s.Contains(stdout, "04 A2 3F")
	s.Contains(stdout, "1200$")
	s.Contains(stdout, "Total: 4500$")
}

func (s *CLISuite) TestRunReadsStdin() {
	stdout, _, err := s.execute("press\nscan 01 02 03 04\n", "run", "--script", "-", "--no-delay", "-o", "json")
	s.Require().NoError(err)

	var session response.Session
	s.Require().NoError(json.Unmarshal([]byte(stdout), &session))
	s.Equal("enrolling", session.Phase)
	s.Equal(4, session.NumPlayers)
	s.Equal("01 02 03 04", session.Slots[0].Identity)
	s.False(session.Slots[1].Assigned)
}

func (s *CLISuite) TestRunRejectsBadScript() {
	path := s.writeScript("wiggle\n")

	_, _, err := s.execute("", "run", "--script", path)
	s.ErrorContains(err, "unknown command")
}

func (s *CLISuite) TestRunRejectsInvalidTerminalConfig() {
	s.T().Setenv("CARDBANK_MAX_PLAYERS", "9")
	path := s.writeScript(eveningScript)

	_, _, err := s.execute("", "run", "--script", path)
	s.ErrorContains(err, "invalid configuration")
}

func (s *CLISuite) TestRunUsesEnvFile() {
	envFile := filepath.Join(s.dir, "terminal.env")
	// godotenv writes straight to the process environment
	s.T().Cleanup(func() { _ = os.Unsetenv("CARDBANK_START_DEFAULT") })
	s.Require().NoError(os.WriteFile(envFile, []byte("CARDBANK_START_DEFAULT=2000\n"), 0o600))
	path := s.writeScript("down 2\npress\nscan 01 02 03 04\nscan 05 06 07 08\npress\n")

	stdout, _, err := s.execute("", "run", "--env-file", envFile, "--script", path, "--no-delay", "-o", "json")
	s.Require().NoError(err)

	var session response.Session
	s.Require().NoError(json.Unmarshal([]byte(stdout), &session))
	s.Equal(int64(2000), session.StartingBalance)
	s.Equal(int64(4000), session.TotalMoney)
}

func (s *CLISuite) TestStatusReadsRedisMirror() {
	mini := miniredis.RunT(s.T())
	redisURL := "redis://" + mini.Addr()
	path := s.writeScript(eveningScript)

	_, _, err := s.execute("", "run", "--storage", "redis", "--redis-url", redisURL, "--script", path, "--no-delay")
	s.Require().NoError(err)

	stdout, _, err := s.execute("", "status", "--storage", "redis", "--redis-url", redisURL, "-o", "json")
	s.Require().NoError(err)

	var session response.Session
	s.Require().NoError(json.Unmarshal([]byte(stdout), &session))
	s.Equal(int64(4500), session.TotalMoney)

	stdout, _, err = s.execute("", "status", "--storage", "redis", "--redis-url", redisURL, "--session", session.ID)
	s.Require().NoError(err)
	s.Contains(stdout, "Session: "+session.ID)
}

func (s *CLISuite) TestStatusWithEmptyMirror() {
	_, _, err := s.execute("", "status")
	s.ErrorContains(err, "session not found")
}
