package mohr

import (
	"bytes"
	"fmt"
)

// SessionIDSize is the length of a session ID in bytes. A session ID
// is the raw ed25519 public key of its owner.
const SessionIDSize = 32

const shortLen = 7

// SessionID identifies a peer by its public signing key. It is a
// plain comparable value: two IDs name the same identity iff their
// key bytes are equal, and it can be used as a map key directly.
type SessionID [SessionIDSize]byte

// SessionIDFromKey wraps 32 public key bytes as a SessionID. Beyond
// the length, no validation is done here; the signing primitive
// judges cryptographic validity at verification time.
func SessionIDFromKey(key []byte) (SessionID, error) {
	if len(key) != SessionIDSize {
		return SessionID{}, fmt.Errorf(
			"%w: got %d key bytes, want %d", ErrInvalidLength, len(key), SessionIDSize,
		)
	}
	var id SessionID
	copy(id[:], key)

	return id, nil
}

// ParseSessionID is the exact inverse of String. Anything that is not
// the canonical text form of a 32-byte key fails.
func ParseSessionID(s string) (SessionID, error) {
	b, err := decodeText(s, SessionIDSize)
	if err != nil {
		return SessionID{}, fmt.Errorf("parsing session id: %w", err)
	}
	var id SessionID
	copy(id[:], b)

	return id, nil
}

// String returns the canonical text form of the ID.
func (id SessionID) String() string {
	return encodeToText(id[:])
}

// Short returns a truncated text form for logs and diagnostics. It is
// neither unique nor parseable; use String for anything a machine
// reads.
func (id SessionID) Short() string {
	return id.String()[:shortLen]
}

// Compare orders two IDs lexicographically by key bytes.
func (id SessionID) Compare(other SessionID) int {
	return bytes.Compare(id[:], other[:])
}

func (id SessionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *SessionID) UnmarshalText(text []byte) error {
	parsed, err := ParseSessionID(string(text))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}
