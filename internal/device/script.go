package device

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/mcoot/cardbank/internal/model"
	"github.com/mcoot/cardbank/internal/services/input"
)

var (
	// ErrScriptExhausted is returned by Hook once the terminal is waiting on
	// input the script will never provide
	ErrScriptExhausted = errors.New("script exhausted")

	// ErrBadScript is returned for a line that cannot be parsed
	ErrBadScript = errors.New("invalid script line")
)

type source int

// restSamples is the number of neutral samples after each joystick step
const restSamples = 2

const (
	sourceJoystick source = iota
	sourceReader
)

// Script drives the joystick and token reader from a line-oriented script:
//
//	up | down | left | right [n]   deflect the stick n times
//	press [n]                      press the button n times
//	scan 04 A2 3F               present a token to the reader
//
// Each deflection or press is held for one sample, then the stick rests at
// neutral for two samples: one to release, one so a following wait for
// release does not swallow the next step.
// Joystick steps and scans are queued separately; the terminal's own flow
// decides which queue it draws from next.
type Script struct {
	mu       sync.Mutex
	samples  []input.Sample
	cards    []model.Identity
	rest     int
	closed   bool
	lastPoll source
	line     int
	err      error
}

// NewScript creates an empty, open script
func NewScript() *Script {
	return &Script{}
}

// LoadScript reads a whole script and closes it
func LoadScript(r io.Reader) (*Script, error) {
	s := NewScript()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := s.Feed(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s.Close()
	return s, nil
}

// StreamScript feeds lines from r in the background, closing the script at
// EOF. A bad line stops the stream and is reported through Hook.
func StreamScript(ctx context.Context, r io.Reader, logger *slog.Logger) *Script {
	s := NewScript()
	go func() {
		defer s.Close()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}
			if err := s.Feed(scanner.Text()); err != nil {
				logger.Error("script stopped", slog.String("error", err.Error()))
				s.fail(err)
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.fail(fmt.Errorf("read script: %w", err))
		}
	}()
	return s
}

// Feed parses one script line and queues its steps
func (s *Script) Feed(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.line++

	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd := strings.ToLower(fields[0])
	if cmd == "scan" {
		id, err := model.ParseIdentity(strings.Join(fields[1:], " "))
		if err != nil || id.IsEmpty() {
			return fmt.Errorf("%w: line %d: bad identity %q", ErrBadScript, s.line, strings.Join(fields[1:], " "))
		}
		s.cards = append(s.cards, id)
		return nil
	}

	sample, ok := commandSample(cmd)
	if !ok {
		return fmt.Errorf("%w: line %d: unknown command %q", ErrBadScript, s.line, fields[0])
	}
	count := 1
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: line %d: bad count %q", ErrBadScript, s.line, fields[1])
		}
		count = n
	}
	for range count {
		s.samples = append(s.samples, sample)
	}
	return nil
}

// Close marks the end of the script
func (s *Script) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Sample returns the next joystick step, releasing the stick between steps
func (s *Script) Sample() input.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPoll = sourceJoystick

	if s.rest > 0 {
		s.rest--
		return input.Neutral()
	}
	if len(s.samples) == 0 {
		return input.Neutral()
	}
	sample := s.samples[0]
	s.samples = s.samples[1:]
	s.rest = restSamples
	return sample
}

// TryReadIdentity returns the next queued token, if any
func (s *Script) TryReadIdentity() (model.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPoll = sourceReader

	if len(s.cards) == 0 {
		return nil, false
	}
	id := s.cards[0]
	s.cards = s.cards[1:]
	return id, true
}

// Remaining returns the number of joystick steps and scans not yet consumed
func (s *Script) Remaining() (steps, scans int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.samples), len(s.cards)
}

// Exhausted reports whether the source polled most recently has nothing
// left and never will
func (s *Script) Exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		return false
	}
	if s.lastPoll == sourceReader {
		return len(s.cards) == 0
	}
	// A step that has not been released yet still has an edge to deliver
	return len(s.samples) == 0 && s.rest < restSamples
}

// Hook stops a wait once the script can no longer satisfy it
func (s *Script) Hook(ctx context.Context) error {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if s.Exhausted() {
		return ErrScriptExhausted
	}
	return nil
}

func (s *Script) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func commandSample(cmd string) (input.Sample, bool) {
	sample := input.Neutral()
	switch cmd {
	case "up":
		sample.Y = input.AxisMax
	case "down":
		sample.Y = 0
	case "left":
		sample.X = input.AxisMax
	case "right":
		sample.X = 0
	case "press":
		sample.Button = false
	default:
		return sample, false
	}
	return sample, true
}
