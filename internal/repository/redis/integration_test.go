//go:build integration

package redis_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/authgate-server/internal/model"
	repo "github.com/dtroode/authgate-server/internal/repository/redis"
)

var addr string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		panic(err)
	}
	addr = fmt.Sprintf("%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newClient(t *testing.T) *goredis.Client {
	t.Helper()
	client, err := repo.NewClient(context.Background(), addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestOTPStore(t *testing.T) {
	ctx := context.Background()
	store := repo.NewOTPStore(newClient(t))

	t.Run("set_get_delete", func(t *testing.T) {
		key := model.OTPKey(model.OTPPurposeVerify, "a@example.com")
		_, err := store.Get(ctx, key)
		require.ErrorIs(t, err, model.ErrNotFound)

		require.NoError(t, store.Set(ctx, key, "123456", time.Minute))
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "123456", got)

		require.NoError(t, store.Delete(ctx, key))
		_, err = store.Get(ctx, key)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("set_if_absent_reuses", func(t *testing.T) {
		key := model.OTPKey(model.OTPPurposeLogin, "b@example.com")
		first, err := store.SetIfAbsent(ctx, key, "111111", time.Minute)
		require.NoError(t, err)
		second, err := store.SetIfAbsent(ctx, key, "222222", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "111111", first)
		assert.Equal(t, "111111", second)
	})

	t.Run("expiry", func(t *testing.T) {
		key := model.OTPKey(model.OTPPurposeLogin, "c@example.com")
		require.NoError(t, store.Set(ctx, key, "111111", time.Second))
		assert.Eventually(t, func() bool {
			_, err := store.Get(ctx, key)
			return err == model.ErrNotFound
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("compare_and_delete_once", func(t *testing.T) {
		key := model.OTPKey(model.OTPPurposeVerify, "d@example.com")
		require.NoError(t, store.Set(ctx, key, "123456", time.Minute))

		ok, err := store.CompareAndDelete(ctx, key, "999999")
		require.NoError(t, err)
		assert.False(t, ok)

		var (
			wg      sync.WaitGroup
			matched atomic.Int32
		)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if ok, err := store.CompareAndDelete(ctx, key, "123456"); err == nil && ok {
					matched.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), matched.Load())
	})
}

func TestSessionRegistry(t *testing.T) {
	ctx := context.Background()
	registry := repo.NewSessionRegistry(newClient(t))
	userID := uuid.New()

	_, err := registry.GetActive(ctx, userID)
	require.ErrorIs(t, err, model.ErrNotFound)

	rec := model.SessionRecord{
		UserID:    userID,
		Token:     "token-a",
		Device:    model.Device{UserAgent: "curl", IP: "10.0.0.1"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, registry.Create(ctx, rec))
	require.ErrorIs(t, registry.Create(ctx, model.SessionRecord{UserID: userID, Token: "token-b"}), model.ErrSessionExists)

	got, err := registry.GetActive(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, rec.Token, got.Token)
	assert.Equal(t, rec.Device, got.Device)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, registry.Destroy(ctx, userID))
	require.NoError(t, registry.Destroy(ctx, userID))
	_, err = registry.GetActive(ctx, userID)
	require.ErrorIs(t, err, model.ErrNotFound)
}
