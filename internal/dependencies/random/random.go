package random

import (
	"crypto/rand"
)

// TokenAlphabet avoids characters that are easy to misread on a small display
const TokenAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Random produces session identifiers and can be mocked for testing
type Random interface {
	// Token returns a string of the given length drawn from TokenAlphabet
	Token(length int) string
}

// CryptoRandom draws tokens from crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Token returns a token of the given length. The modulo bias over a
// 31 symbol alphabet is irrelevant for session labels.
func (r *CryptoRandom) Token(length int) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	// rand.Read never returns an error on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = TokenAlphabet[int(b)%len(TokenAlphabet)]
	}
	return string(buf)
}
