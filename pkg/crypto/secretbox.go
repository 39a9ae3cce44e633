package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Secretbox encrypts sensitive string fields at rest. Each message gets a
// fresh salt and nonce; the key is derived per message with PBKDF2. The
// wire layout is base64(salt | nonce | ciphertext+tag).
//
// Decrypt is fail-closed: a tampered or undecryptable payload returns an
// error, never the raw input.
type Secretbox struct {
	passphrase []byte
}

const (
	saltLength       = 64
	keyLength        = 32
	pbkdf2Iterations = 100_000
)

var ErrDecrypt = errors.New("secretbox: cannot decrypt payload")

// NewSecretbox creates a secretbox from a non-empty passphrase
func NewSecretbox(passphrase string) (*Secretbox, error) {
	if passphrase == "" {
		return nil, errors.New("secretbox: empty passphrase")
	}
	return &Secretbox{passphrase: []byte(passphrase)}, nil
}

// Encrypt seals plaintext
func (s *Secretbox) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	out := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt opens a payload produced by Encrypt
func (s *Secretbox) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrDecrypt
	}
	if len(raw) < saltLength {
		return "", ErrDecrypt
	}

	salt := raw[:saltLength]
	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	rest := raw[saltLength:]
	if len(rest) < gcm.NonceSize() {
		return "", ErrDecrypt
	}
	nonce, sealed := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(plaintext), nil
}

func (s *Secretbox) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(s.passphrase, salt, pbkdf2Iterations, keyLength, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
