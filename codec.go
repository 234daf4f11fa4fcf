package mohr

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// encoding is the canonical text form shared by session IDs and
// signature sets: unpadded URL-safe base64. Changing it would change
// every identity, so it is frozen.
var encoding = base64.RawURLEncoding

var (
	ErrInvalidEncoding = errors.New("malformed encoding")
	ErrInvalidLength   = errors.New("invalid length")
)

func encodeToText(b []byte) string {
	return encoding.EncodeToString(b)
}

// decodeText parses s as the canonical encoding of exactly size
// bytes. The text form doubles as a fingerprint of the value, so only
// the exact output of encodeToText is accepted: re-encoding the
// decoded bytes must reproduce s, which rejects padding, interior
// newlines and non-zero trailing bits that the base64 decoder would
// otherwise let through.
func decodeText(s string, size int) ([]byte, error) {
	b, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if encoding.EncodeToString(b) != s {
		return nil, fmt.Errorf("%w: non-canonical form", ErrInvalidEncoding)
	}
	if len(b) != size {
		return nil, fmt.Errorf(
			"%w: got %d bytes, want %d", ErrInvalidLength, len(b), size,
		)
	}

	return b, nil
}
