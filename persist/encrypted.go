package persist

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/c360/history/errors"
)

// Encrypted wraps an inner codec with XChaCha20-Poly1305 authenticated
// encryption. The wire format is a random 24-byte nonce followed by the
// sealed inner encoding; any tampering fails authentication on
// Unmarshal.
type Encrypted struct {
	inner Codec
	key   []byte
}

// NewEncrypted wraps inner with authenticated encryption under key,
// which must be exactly 32 bytes.
func NewEncrypted(inner Codec, key []byte) (*Encrypted, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.WrapInvalid(errors.ErrInvalidEncoding, "Encrypted", "NewEncrypted",
			fmt.Sprintf("key is %d bytes, want %d", len(key), chacha20poly1305.KeySize))
	}

	owned := make([]byte, len(key))
	copy(owned, key)

	return &Encrypted{inner: inner, key: owned}, nil
}

func (e *Encrypted) Marshal(v any) ([]byte, error) {
	plain, err := e.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(e.key)
	if err != nil {
		return nil, errors.WrapFatal(err, "Encrypted", "Marshal", "cipher construction")
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(plain)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.WrapTransient(err, "Encrypted", "Marshal", "nonce generation")
	}

	return aead.Seal(nonce, nonce, plain, nil), nil
}

func (e *Encrypted) Unmarshal(data []byte, v any) error {
	if len(data) < chacha20poly1305.NonceSizeX {
		return errors.WrapInvalid(errors.ErrInvalidEncoding, "Encrypted", "Unmarshal",
			fmt.Sprintf("%d bytes is shorter than the nonce", len(data)))
	}

	aead, err := chacha20poly1305.NewX(e.key)
	if err != nil {
		return errors.WrapFatal(err, "Encrypted", "Unmarshal", "cipher construction")
	}

	nonce, sealed := data[:chacha20poly1305.NonceSizeX], data[chacha20poly1305.NonceSizeX:]
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return errors.WrapInvalid(errors.ErrDecryptFailed, "Encrypted", "Unmarshal", "authentication")
	}

	return e.inner.Unmarshal(plain, v)
}
