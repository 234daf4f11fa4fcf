// Package keyfile reads and writes key pairs as PEM files, for
// callers that keep their identity on disk. The mohr core itself
// never persists key material.
package keyfile

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/hossein1376/mohr"
)

const (
	publicKeyType  = "PUBLIC KEY"
	privateKeyType = "PRIVATE KEY"
)

var (
	ErrMissingPEM  = errors.New("no PEM data found")
	ErrMissingFile = errors.New("file not found")
	ErrInvalidKey  = errors.New("invalid key type")
)

// Save writes the pair's private key to path as a PKCS#8 PEM block,
// and its public key to path+".pub" as a PKIX PEM block.
func Save(path string, kp *mohr.KeyPair) error {
	private, err := x509.MarshalPKCS8PrivateKey(kp.PrivateKey())
	if err != nil {
		return fmt.Errorf("marshalling private key: %w", err)
	}
	if err := writeKey(private, privateKeyType, path); err != nil {
		return fmt.Errorf("saving private key: %w", err)
	}

	id := kp.ID()
	public, err := x509.MarshalPKIXPublicKey(ed25519.PublicKey(id[:]))
	if err != nil {
		return fmt.Errorf("marshalling public key: %w", err)
	}
	if err := writeKey(public, publicKeyType, path+".pub"); err != nil {
		return fmt.Errorf("saving public key: %w", err)
	}

	return nil
}

// Load reads a private key saved by Save and reconstructs the pair.
func Load(path string) (*mohr.KeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissingFile
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrMissingPEM
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	private, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, ErrInvalidKey
	}
	kp, err := mohr.NewKeyPairFromPrivate(private)
	if err != nil {
		return nil, fmt.Errorf("reconstructing key pair: %w", err)
	}

	return kp, nil
}

func writeKey(key []byte, kType, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	block := pem.Block{
		Bytes: key,
		Type:  kType,
	}
	if err := pem.Encode(file, &block); err != nil {
		return fmt.Errorf("encode key: %w", err)
	}

	return nil
}
