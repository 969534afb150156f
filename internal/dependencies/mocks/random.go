package mocks

import (
	"fmt"

	"github.com/mcoot/cardbank/internal/dependencies/random"
)

// MockRandom hands out queued tokens, then numbered fallbacks
type MockRandom struct {
	tokens []string
	issued int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Token pops the next queued token. With the queue empty it returns
// SESSION followed by a counter so repeated sessions stay distinct.
func (r *MockRandom) Token(_ int) string {
	r.issued++
	if len(r.tokens) == 0 {
		return fmt.Sprintf("SESSION%04d", r.issued)
	}
	next := r.tokens[0]
	r.tokens = r.tokens[1:]
	return next
}

// QueueToken appends tokens to be returned by Token
func (r *MockRandom) QueueToken(values ...string) {
	r.tokens = append(r.tokens, values...)
}
