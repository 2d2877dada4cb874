package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "bizmanager:session:"

const storageTimeout = 3 * time.Second

// SessionStorage adapts Client to fiber.Storage for middleware/session
type SessionStorage struct {
	client *Client
}

func NewSessionStorage(client *Client) *SessionStorage {
	return &SessionStorage{client: client}
}

func (s *SessionStorage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storageTimeout)
}

// Get returns nil, nil for unknown keys as fiber.Storage requires
func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	val, err := s.client.Get(ctx, sessionKeyPrefix+key)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Set(ctx, sessionKeyPrefix+key, val, exp)
}

func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Del(ctx, sessionKeyPrefix+key)
}

func (s *SessionStorage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()
	_, err := s.client.ScanAndDelete(ctx, sessionKeyPrefix+"*")
	return err
}

// Close is a no-op, the container owns the client
func (s *SessionStorage) Close() error {
	return nil
}
