package mohr

import (
	"fmt"
)

// SignatureSize is the length of a raw ed25519 signature in bytes.
const SignatureSize = 64

// signatureSetSize is the binary form of a SignatureSet: the raw
// signature followed by the signer's public key.
const signatureSetSize = SignatureSize + SessionIDSize

// SignatureSet is a transportable proof that the holder of a private
// key signed one specific framed message sequence. It carries the
// signer's public key alongside the signature, so a verifier can
// reject a proof minted under a different identity before the
// primitive ever runs.
//
// SignatureSet is a comparable value; copies are interchangeable.
type SignatureSet struct {
	signature [SignatureSize]byte
	signer    SessionID
}

// ParseSignatureSet is the exact inverse of String; any byte mutation
// of the text either fails to parse or yields a different value,
// never a silently corrupted one.
func ParseSignatureSet(s string) (SignatureSet, error) {
	b, err := decodeText(s, signatureSetSize)
	if err != nil {
		return SignatureSet{}, fmt.Errorf("parsing signature set: %w", err)
	}
	var ss SignatureSet
	copy(ss.signature[:], b[:SignatureSize])
	copy(ss.signer[:], b[SignatureSize:])

	return ss, nil
}

// SignerID returns the identity this signature claims to come from.
// The claim is untrusted until Verify checks it against the session
// ID under test.
func (ss SignatureSet) SignerID() SessionID {
	return ss.signer
}

// String returns the canonical text form: signature and signer key
// concatenated, then encoded.
func (ss SignatureSet) String() string {
	buf := make([]byte, 0, signatureSetSize)
	buf = append(buf, ss.signature[:]...)
	buf = append(buf, ss.signer[:]...)

	return encodeToText(buf)
}

func (ss SignatureSet) MarshalText() ([]byte, error) {
	return []byte(ss.String()), nil
}

func (ss *SignatureSet) UnmarshalText(text []byte) error {
	parsed, err := ParseSignatureSet(string(text))
	if err != nil {
		return err
	}
	*ss = parsed

	return nil
}
