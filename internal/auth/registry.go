package auth

import (
	"context"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/redisclient"
)

// Registry tracks which session ids are still live
type Registry interface {
	Register(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Revoke(ctx context.Context, id string) error
}

// MemoryRegistry keeps sessions in process memory
type MemoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

// NewMemoryRegistry creates an empty registry
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]time.Time), now: time.Now}
}

func (r *MemoryRegistry) Register(ctx context.Context, id string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = r.now().Add(ttl)
	return nil
}

func (r *MemoryRegistry) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expiry, ok := r.sessions[id]
	if !ok {
		return false, nil
	}
	if !r.now().Before(expiry) {
		delete(r.sessions, id)
		return false, nil
	}
	return true, nil
}

func (r *MemoryRegistry) Revoke(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// RedisRegistry stores one key per session with the session TTL
type RedisRegistry struct {
	client *redisclient.Client
	prefix string
}

// NewRedisRegistry uses keys of the form session:<id>
func NewRedisRegistry(client *redisclient.Client) *RedisRegistry {
	return &RedisRegistry{client: client, prefix: "session:"}
}

func (r *RedisRegistry) Register(ctx context.Context, id string, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+id, "1", ttl).Err()
}

func (r *RedisRegistry) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisRegistry) Revoke(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.prefix+id).Err()
}
