package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/authgate-server/internal/model"
)

// Ensure OTPStore implements the model.OTPStore interface.
var _ model.OTPStore = (*OTPStore)(nil)

// compareAndDelete removes KEYS[1] only when it holds ARGV[1].
var compareAndDelete = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// OTPStore keeps passcodes as plain string keys with a TTL.
type OTPStore struct {
	client redis.UniversalClient
}

func NewOTPStore(client redis.UniversalClient) *OTPStore {
	return &OTPStore{client: client}
}

func (s *OTPStore) Get(ctx context.Context, key string) (string, error) {
	code, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get otp: %w", err)
	}
	return code, nil
}

// Set stores code. A zero ttl keeps the key until it is deleted.
func (s *OTPStore) Set(ctx context.Context, key, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set otp: %w", err)
	}
	return nil
}

func (s *OTPStore) SetIfAbsent(ctx context.Context, key, code string, ttl time.Duration) (string, error) {
	ok, err := s.client.SetNX(ctx, key, code, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to set otp: %w", err)
	}
	if ok {
		return code, nil
	}

	live, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Expired between SETNX and GET.
			return s.SetIfAbsent(ctx, key, code, ttl)
		}
		return "", fmt.Errorf("failed to get otp: %w", err)
	}
	return live, nil
}

func (s *OTPStore) CompareAndDelete(ctx context.Context, key, code string) (bool, error) {
	n, err := compareAndDelete.Run(ctx, s.client, []string{key}, code).Int()
	if err != nil {
		return false, fmt.Errorf("failed to consume otp: %w", err)
	}
	return n == 1, nil
}

func (s *OTPStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}
