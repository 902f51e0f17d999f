package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// KeySize - размер ключа AES-256
const KeySize = 32

// ErrSealedValue возвращается, когда значение повреждено, подменено
// или запечатано другим ключом
var ErrSealedValue = errors.New("sealed value cannot be opened")

// Sealer шифрует строковые значения (токены) перед записью на диск.
// Каждое значение привязано к своему полю через additional data GCM:
// access token нельзя подставить на место refresh token.
// Пустая строка остается пустой: это значение "нет токена".
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer создает Sealer с ключом длиной KeySize
func NewSealer(key []byte) (*Sealer, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Sealer{aead: aead}, nil
}

// Seal шифрует значение поля field и возвращает base64(nonce | ciphertext | tag)
func (s *Sealer) Seal(field, value string) (string, error) {
	if value == "" {
		return "", nil
	}

	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(value)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(value), []byte(field))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open расшифровывает значение поля field, полученное из Seal
func (s *Sealer) Open(field, sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealedValue, err)
	}
	if len(raw) < s.aead.NonceSize()+s.aead.Overhead() {
		return "", fmt.Errorf("%w: too short", ErrSealedValue)
	}

	n := s.aead.NonceSize()
	plaintext, err := s.aead.Open(nil, raw[:n], raw[n:], []byte(field))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealedValue, err)
	}

	return string(plaintext), nil
}
