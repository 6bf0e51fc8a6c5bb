package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMarker stores sent-markers as SET NX keys with a TTL, shared across
// server replicas so only one of them reminds.
type RedisMarker struct {
	client *redis.Client
}

func NewRedisMarker(client *redis.Client) *RedisMarker {
	return &RedisMarker{client: client}
}

func (m *RedisMarker) MarkSent(ctx context.Context, appointmentID string, ttl time.Duration) (bool, error) {
	return m.client.SetNX(ctx, "reminder:sent:"+appointmentID, 1, ttl).Result()
}

// MemoryMarker is the single-process fallback when no Redis address is
// configured.
type MemoryMarker struct {
	mu   sync.Mutex
	sent map[string]time.Time
}

func NewMemoryMarker() *MemoryMarker {
	return &MemoryMarker{sent: make(map[string]time.Time)}
}

func (m *MemoryMarker) MarkSent(ctx context.Context, appointmentID string, ttl time.Duration) (bool, error) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, expires := range m.sent {
		if expires.Before(now) {
			delete(m.sent, id)
		}
	}
	if _, ok := m.sent[appointmentID]; ok {
		return false, nil
	}
	m.sent[appointmentID] = now.Add(ttl)
	return true, nil
}
