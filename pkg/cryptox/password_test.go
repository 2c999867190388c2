package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_PHCFormat(t *testing.T) {
	// Действие
	hash, err := HashPassword("secret-password")

	// Проверки
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.NotContains(t, hash, "secret-password")
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	// Один и тот же пароль дает разные хеши из-за случайной соли
	first, err := HashPassword("secret-password")
	require.NoError(t, err)
	second, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_Success(t *testing.T) {
	// Подготовка
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)

	// Проверки
	assert.NoError(t, VerifyPassword("secret-password", hash))
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	// Подготовка
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)

	// Проверки
	assert.ErrorIs(t, VerifyPassword("wrong-password", hash), ErrPasswordMismatch)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not phc", "plain-text"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"broken salt", "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword("secret-password", tt.hash)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}
