package contactauth

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
)

// SecretSize is the size of secrets generated by NewSecret.
const SecretSize = 32

// NewSecret generates random secret to prove contact ownership with.
func NewSecret() ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}

	return secret, nil
}

// EncodeSecret returns base58 text form of the secret suitable for delivery
// through the contact channel.
func EncodeSecret(secret []byte) string {
	return base58.Encode(secret)
}

// DecodeSecret parses the secret encoded by EncodeSecret.
func DecodeSecret(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("empty secret")
	}

	secret, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode base58 secret: %w", err)
	}

	return secret, nil
}

// RequestKey returns the request key of the secret which is passed to the
// administrator for whitelisting.
func RequestKey(secret []byte) []byte {
	return hash.Sha256(secret).BytesBE()
}
