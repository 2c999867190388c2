package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	typeAccess     = "access"
	typeMFAPending = "mfa_pending"
)

// ErrWrongTokenType возвращается, когда тип токена не соответствует ожидаемому
var ErrWrongTokenType = errors.New("token type mismatch")

// Claims - JWT-клеймы с типом токена и идентификатором пользователя
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"typ"`
}

// Manager выпускает и проверяет HMAC-подписанные JWT
type Manager struct {
	secretKey  string
	accessTTL  time.Duration
	pendingTTL time.Duration
}

// NewManager создает менеджер токенов с симметричным секретом
func NewManager(secretKey string, accessTTL time.Duration) *Manager {
	return &Manager{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		pendingTTL: 5 * time.Minute,
	}
}

// GenerateAccessToken выпускает токен доступа для пользователя
func (m *Manager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return m.generate(userID, typeAccess, m.accessTTL)
}

// GenerateMFAPendingToken выпускает короткоживущий токен для второго шага логина.
// Таким токеном нельзя открыть ни один защищенный маршрут.
func (m *Manager) GenerateMFAPendingToken(userID uuid.UUID) (string, error) {
	return m.generate(userID, typeMFAPending, m.pendingTTL)
}

func (m *Manager) generate(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ParseAccessToken проверяет токен доступа и возвращает идентификатор пользователя
func (m *Manager) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	return m.parse(tokenString, typeAccess)
}

// ParseMFAPendingToken проверяет токен второго шага логина
func (m *Manager) ParseMFAPendingToken(tokenString string) (uuid.UUID, error) {
	return m.parse(tokenString, typeMFAPending)
}

func (m *Manager) parse(tokenString, wantType string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("token is invalid")
	}
	if claims.TokenType != wantType {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrWrongTokenType, claims.TokenType)
	}
	return claims.UserID, nil
}
