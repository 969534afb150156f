package redis

import (
	"fmt"

	"github.com/mcoot/cardbank/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "cardbank"

// sessionKey returns the Redis key for a Session snapshot
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// latestSessionKey returns the Redis key holding the most recently saved session ID
func latestSessionKey() string {
	return fmt.Sprintf("%s:session:latest", keyPrefix)
}
