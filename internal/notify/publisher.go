package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	notifyQueueKey = "ngo_notify_events"
)

// Источники событий
const (
	SourceWeb  = "web"
	SourceUSSD = "ussd"
)

// Event - уведомление партнерской организации о новом обращении.
// Для веб-инцидентов публикуется только при согласии consent.ngo,
// USSD-обращения ретранслируются целиком (инцидент не сохраняется).
type Event struct {
	IncidentID  uuid.UUID `json:"incident_id,omitempty"`
	Source      string    `json:"source"`
	Type        string    `json:"type"`
	Urgency     string    `json:"urgency"`
	Anonymous   bool      `json:"anonymous"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации уведомлений
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие уведомления в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notify event: %w", err)
	}

	// LPUSH в левую часть списка, воркер читает BRPop с правой
	if err := p.redisClient.LPush(ctx, notifyQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notify event to Redis: %w", err)
	}
	return nil
}
