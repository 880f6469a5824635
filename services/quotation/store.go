package quotation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionKeyPrefix = "quotation:wizard:"
	lockKeySuffix    = ":lock"
)

// SessionStore keeps wizard sessions between requests and provides a
// per-session lock. AcquireLock returns an owner token; ReleaseLock only frees
// the lock while that token still holds it.
type SessionStore interface {
	Save(ctx context.Context, w *Wizard, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (*Wizard, error)
	Delete(ctx context.Context, sessionID string) error
	AcquireLock(ctx context.Context, sessionID string, ttl time.Duration) (token string, ok bool, err error)
	ReleaseLock(ctx context.Context, sessionID, token string) error
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func lockKey(id string) string {
	return sessionKeyPrefix + id + lockKeySuffix
}

// releaseLockScript deletes the lock key only if it still holds our token.
var releaseLockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisSessionStore serializes wizards as JSON under a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, w *Wizard, ttl time.Duration) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal quotation wizard: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(w.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store quotation wizard: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*Wizard, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read quotation wizard: %w", err)
	}
	var w Wizard
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse quotation wizard: %w", err)
	}
	return &w, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete quotation wizard: %w", err)
	}
	return nil
}

// AcquireLock uses SETNX so at most one request mutates a session across
// every API instance. The TTL frees the lock if the holder dies.
func (s *RedisSessionStore) AcquireLock(ctx context.Context, sessionID string, ttl time.Duration) (string, bool, error) {
	token := uuid.New().String()
	ok, err := s.Client.SetNX(ctx, lockKey(sessionID), token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	return token, ok, nil
}

func (s *RedisSessionStore) ReleaseLock(ctx context.Context, sessionID, token string) error {
	return releaseLockScript.Run(ctx, s.Client, []string{lockKey(sessionID)}, token).Err()
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memoryLock struct {
	token string
	until time.Time
}

// MemorySessionStore is a single-process SessionStore. Entries are stored as
// JSON so loads never alias a saved wizard.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	locks    map[string]memoryLock
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: map[string]memoryEntry{},
		locks:    map[string]memoryLock{},
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Save(_ context.Context, w *Wizard, ttl time.Duration) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal quotation wizard: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[w.ID] = memoryEntry{data: data, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Load(_ context.Context, sessionID string) (*Wizard, error) {
	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	if ok && s.now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var w Wizard
	if err := json.Unmarshal(entry.data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse quotation wizard: %w", err)
	}
	return &w, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemorySessionStore) AcquireLock(_ context.Context, sessionID string, ttl time.Duration) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, held := s.locks[sessionID]; held && s.now().Before(l.until) {
		return "", false, nil
	}
	token := uuid.New().String()
	s.locks[sessionID] = memoryLock{token: token, until: s.now().Add(ttl)}
	return token, true, nil
}

func (s *MemorySessionStore) ReleaseLock(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, held := s.locks[sessionID]; held && l.token == token {
		delete(s.locks, sessionID)
	}
	return nil
}
