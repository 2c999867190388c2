package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidKeyLength возвращается при ключе неверной длины
var ErrInvalidKeyLength = errors.New("invalid key length")

const dataKeyLength = 32 // AES-256

// GenerateDataKey генерирует случайный 256-битный ключ для одного файла
func GenerateDataKey() ([]byte, error) {
	key := make([]byte, dataKeyLength)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate data key: %w", err)
	}
	return key, nil
}

// Seal шифрует данные AES-256-GCM. Nonce добавляется в начало шифртекста.
func Seal(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open расшифровывает данные, зашифрованные Seal. Любая порча
// шифртекста или неверный ключ приводят к ошибке аутентификации.
func Open(key, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

// WrapKey шифрует ключ файла мастер-ключом (envelope encryption)
func WrapKey(masterKey, dataKey []byte) ([]byte, error) {
	return Seal(masterKey, dataKey)
}

// UnwrapKey расшифровывает обернутый ключ файла
func UnwrapKey(masterKey, wrapped []byte) ([]byte, error) {
	return Open(masterKey, wrapped)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != dataKeyLength {
		return nil, ErrInvalidKeyLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}
