package mohr

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/ed25519"
)

var (
	ErrKeyMismatch      = errors.New("signature key does not match session id")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Verify checks that sig proves the holder of this identity's private
// key signed exactly msgs, in this order and with these boundaries.
// The signer key embedded in sig is compared against the ID first, so
// a well-formed signature from a different signer fails with
// ErrKeyMismatch before the primitive runs; a cryptographic rejection
// fails with ErrInvalidSignature. Verification is all-or-nothing, and
// failure is a normal outcome, not a panic.
func (id SessionID) Verify(sig SignatureSet, msgs ...[]byte) error {
	if sig.signer != id {
		return fmt.Errorf("%w: signed by %s", ErrKeyMismatch, sig.signer.Short())
	}
	if !ed25519.Verify(ed25519.PublicKey(id[:]), frame(msgs), sig.signature[:]) {
		return ErrInvalidSignature
	}

	return nil
}

// VerifyString reports whether sig is a valid signature by id over
// data as a single message, with all three in text form. Malformed
// input and failed verification alike collapse to false; use
// ParseSessionID, ParseSignatureSet and Verify directly to tell them
// apart.
func VerifyString(id, sig, data string) bool {
	sid, err := ParseSessionID(id)
	if err != nil {
		return false
	}
	ss, err := ParseSignatureSet(sig)
	if err != nil {
		return false
	}

	return sid.Verify(ss, []byte(data)) == nil
}
