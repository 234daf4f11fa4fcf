// Package mohr implements self-verifying session identities. A
// session ID is the ed25519 public key of its owner; the matching
// key pair signs ordered sequences of messages, producing a
// transportable signature set that any holder of the ID can verify
// without further key exchange.
//
//	kp, err := mohr.NewKeyPair()
//	if err != nil { ... }
//	sig, _ := kp.Sign([]byte("challenge"))
//
//	// elsewhere, given only text forms:
//	ok := mohr.VerifyString(idText, sigText, "challenge")
//
// Both SessionID and SignatureSet round-trip through a canonical,
// URL-safe text form that is stable across versions and safe to
// embed in headers, query parameters and JSON fields.
package mohr
