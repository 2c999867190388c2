package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
	"github.com/redis/go-redis/v9"
)

// USSDSessionStore хранит состояние USSD-сессий в Redis с TTL
type USSDSessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewUSSDSessionStore(redisClient *redis.Client, ttl time.Duration) service.USSDSessionStore {
	return &USSDSessionStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get возвращает сессию или (nil, nil), если она истекла или не существует
func (s *USSDSessionStore) Get(ctx context.Context, sessionID string) (*service.USSDSession, error) {
	key := sessionKey(sessionID)
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ussd session: %w", err)
	}

	session := &service.USSDSession{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ussd session: %w", err)
	}
	return session, nil
}

// Save сохраняет сессию, продлевая TTL
func (s *USSDSessionStore) Save(ctx context.Context, session *service.USSDSession) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal ussd session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(session.SessionID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save ussd session: %w", err)
	}
	return nil
}

// Delete удаляет сессию
func (s *USSDSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete ussd session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("ussd_session:%s", sessionID)
}
