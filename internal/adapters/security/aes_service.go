package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

// ErrMalformed is returned by Unseal for values that were never produced by Seal.
var ErrMalformed = errors.New("sealed value is malformed")

// aesSealer implements ports.SecurityPort with AES-GCM. The scope is passed
// as additional data, so a sealed ID copied into another session fails to open.
type aesSealer struct {
	aead cipher.AEAD
	log  zerolog.Logger
}

// NewAESSealer builds a sealer from a hex encoded 16 or 32 byte key.
func NewAESSealer(hexKey string, baseLogger *zerolog.Logger) (ports.SecurityPort, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(key) != 16 && len(key) != 32 {
		return nil, fmt.Errorf("key must be 16 or 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("could not create AES cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("could not create GCM: %w", err)
	}

	log := baseLogger.With().Str("component", "sealer").Logger()
	log.Info().Int("key_bits", len(key)*8).Msg("Aadhaar sealer ready")
	return &aesSealer{aead: aead, log: log}, nil
}

func (s *aesSealer) Seal(plaintext, scope string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		s.log.Error().Err(err).Msg("Failed to generate nonce")
		return "", fmt.Errorf("could not generate nonce: %w", err)
	}
	out := s.aead.Seal(nonce, nonce, []byte(plaintext), []byte(scope))
	return base64.RawURLEncoding.EncodeToString(out), nil
}

func (s *aesSealer) Unseal(sealed, scope string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < s.aead.NonceSize()+s.aead.Overhead() {
		return "", ErrMalformed
	}

	n := s.aead.NonceSize()
	plain, err := s.aead.Open(nil, raw[:n], raw[n:], []byte(scope))
	if err != nil {
		s.log.Warn().Str("scope", scope).Msg("Sealed value failed authentication")
		return "", fmt.Errorf("could not unseal: %w", err)
	}
	return string(plain), nil
}
