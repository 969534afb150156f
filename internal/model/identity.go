package model

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Identity length bounds. Readers report 4, 7 or 10 byte UIDs but shorter
// tokens are accepted as-is.
const (
	MinIdentityLen = 1
	MaxIdentityLen = 10
)

// Identity is the unique ID burned into a physical player token
type Identity []byte

// ParseIdentity parses the display form produced by Identity.String.
// Bytes may be separated by any whitespace; an empty string yields an empty Identity.
func ParseIdentity(s string) (Identity, error) {
	fields := strings.Fields(s)
	id := make(Identity, 0, len(fields))
	for _, f := range fields {
		if len(f) != 2 {
			return nil, fmt.Errorf("%w: byte %q", ErrInvalidIdentity, f)
		}
		b, err := hex.DecodeString(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
		}
		id = append(id, b[0])
	}
	return id, nil
}

// String renders the identity as uppercase, zero-padded hex byte pairs
// separated by single spaces, e.g. "04 A2 3F"
func (id Identity) String() string {
	var sb strings.Builder
	for i, b := range id {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// IsEmpty returns true if no identity has been recorded
func (id Identity) IsEmpty() bool {
	return len(id) == 0
}

// Equal compares two identities by their rendered form
func (id Identity) Equal(other Identity) bool {
	return id.String() == other.String()
}

// Validate checks the identity length is one a token reader can produce
func (id Identity) Validate() error {
	if len(id) < MinIdentityLen || len(id) > MaxIdentityLen {
		return fmt.Errorf("%w: length %d", ErrInvalidIdentity, len(id))
	}
	return nil
}

// MarshalText encodes the identity in its display form
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes an identity from its display form
func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
