package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	// Подготовка
	manager := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	// Действие
	tokenString, err := manager.GenerateAccessToken(userID)
	require.NoError(t, err)
	parsedID, err := manager.ParseAccessToken(tokenString)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestAccessToken_Expired(t *testing.T) {
	// Подготовка: токен с отрицательным TTL уже истек
	manager := NewManager("test-secret", -time.Minute)

	tokenString, err := manager.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	// Действие
	parsedID, err := manager.ParseAccessToken(tokenString)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	// Подготовка
	issuer := NewManager("test-secret", time.Hour)
	verifier := NewManager("other-secret", time.Hour)

	tokenString, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	// Действие
	parsedID, err := verifier.ParseAccessToken(tokenString)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

// Pending-токен второго шага логина не должен открывать защищенные маршруты,
// а токен доступа не должен проходить как pending.
func TestTokenTypes_NotInterchangeable(t *testing.T) {
	// Подготовка
	manager := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	pending, err := manager.GenerateMFAPendingToken(userID)
	require.NoError(t, err)
	access, err := manager.GenerateAccessToken(userID)
	require.NoError(t, err)

	// Действие и проверки
	_, err = manager.ParseAccessToken(pending)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = manager.ParseMFAPendingToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	parsedID, err := manager.ParseMFAPendingToken(pending)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestAccessToken_Garbage(t *testing.T) {
	// Подготовка
	manager := NewManager("test-secret", time.Hour)

	// Действие
	parsedID, err := manager.ParseAccessToken("not-a-jwt")

	// Проверки
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}
