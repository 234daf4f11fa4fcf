package mohr

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"slices"

	"golang.org/x/crypto/ed25519"
)

// KeyPair holds the private key behind a session identity and is the
// sole producer of signatures for it. It is immutable after
// construction; concurrent Sign calls on one pair are safe and
// independent.
type KeyPair struct {
	privateKey ed25519.PrivateKey
	id         SessionID
}

// NewKeyPair generates a fresh ed25519 key pair from the system's
// secure random source. It fails only if that source does.
func NewKeyPair() (*KeyPair, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating key pair: %w", err)
	}
	id, err := SessionIDFromKey(public)
	if err != nil {
		return nil, err
	}

	return &KeyPair{privateKey: private, id: id}, nil
}

// NewKeyPairFromPrivate reconstructs a pair from existing private key
// material, deriving and caching its public key. Persisting and
// protecting that material is the caller's concern; this package
// never writes it anywhere.
func NewKeyPairFromPrivate(private ed25519.PrivateKey) (*KeyPair, error) {
	if len(private) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf(
			"%w: got %d private key bytes, want %d",
			ErrInvalidLength, len(private), ed25519.PrivateKeySize,
		)
	}
	public, ok := private.Public().(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type %T", private.Public())
	}
	id, err := SessionIDFromKey(public)
	if err != nil {
		return nil, err
	}

	return &KeyPair{privateKey: slices.Clone(private), id: id}, nil
}

// ID returns the session identity derived from the public key.
func (kp *KeyPair) ID() SessionID {
	return kp.id
}

// PrivateKey returns a copy of the private key for callers that
// manage their own key persistence. Treat it as sensitive.
func (kp *KeyPair) PrivateKey() ed25519.PrivateKey {
	return slices.Clone(kp.privateKey)
}

// Sign frames msgs and signs the framed bytes with the private key.
// The returned set carries this pair's public key. The error is
// reserved for catastrophic primitive failure and is nil in practice.
func (kp *KeyPair) Sign(msgs ...[]byte) (SignatureSet, error) {
	sig := ed25519.Sign(kp.privateKey, frame(msgs))
	var ss SignatureSet
	copy(ss.signature[:], sig)
	ss.signer = kp.id

	return ss, nil
}

const lenPrefixSize = 8

// frame serializes msgs into the canonical byte string that is
// actually signed: each message as an 8-byte big-endian length
// followed by its raw bytes, concatenated in order with no separators
// or terminator. The prefixes make message boundaries part of the
// signed content, so reordering or resplitting the sequence changes
// the signature. An empty sequence frames to an empty string. This
// layout is frozen; it is part of the identity format.
func frame(msgs [][]byte) []byte {
	size := 0
	for _, msg := range msgs {
		size += lenPrefixSize + len(msg)
	}
	framed := make([]byte, 0, size)
	for _, msg := range msgs {
		framed = binary.BigEndian.AppendUint64(framed, uint64(len(msg)))
		framed = append(framed, msg...)
	}

	return framed
}
