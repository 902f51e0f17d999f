package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/hkdf"
)

// InfoSessionTokens - контекст HKDF для ключа шифрования токенов сессии
const InfoSessionTokens = "gophershop/session-tokens/v1"

// LoadOrCreateKey читает мастер-ключ установки из файла или создает его.
// Ключ генерируется один раз на устройство и хранится с правами 0600.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(key) != KeySize {
			return nil, fmt.Errorf("key file %s must contain %d bytes, got %d", path, KeySize, len(key))
		}
		return key, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	key = make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}

	return key, nil
}

// DeriveKey выводит независимый подключ из мастер-ключа через HKDF-SHA256
func DeriveKey(master []byte, info string) ([]byte, error) {
	if len(master) == 0 {
		return nil, fmt.Errorf("master key cannot be empty")
	}

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// NewSessionSealer собирает Sealer для токенов из файла ключа установки
func NewSessionSealer(keyPath string) (*Sealer, error) {
	master, err := LoadOrCreateKey(keyPath)
	if err != nil {
		return nil, err
	}
	key, err := DeriveKey(master, InfoSessionTokens)
	if err != nil {
		return nil, err
	}
	return NewSealer(key)
}
