//go:build integration

package mongo_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/authgate-server/internal/model"
	repo "github.com/dtroode/authgate-server/internal/repository/mongo"
)

var uri string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "mongo:6",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
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
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		panic(err)
	}
	uri = fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestSessionRegistry(t *testing.T) {
	ctx := context.Background()
	client, err := repo.Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	registry := repo.NewSessionRegistry(client.Database("authgate_test").Collection("sessions"))

	t.Run("lifecycle", func(t *testing.T) {
		userID := uuid.New()
		_, err := registry.GetActive(ctx, userID)
		require.ErrorIs(t, err, model.ErrNotFound)

		rec := model.SessionRecord{
			UserID:    userID,
			Token:     "token-a",
			Device:    model.Device{UserAgent: "curl", IP: "10.0.0.1"},
			CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		}
		require.NoError(t, registry.Create(ctx, rec))
		require.ErrorIs(t, registry.Create(ctx, model.SessionRecord{UserID: userID, Token: "token-b"}), model.ErrSessionExists)

		got, err := registry.GetActive(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, "token-a", got.Token)
		assert.Equal(t, rec.Device, got.Device)
		assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

		require.NoError(t, registry.Destroy(ctx, userID))
		require.NoError(t, registry.Destroy(ctx, userID))
		_, err = registry.GetActive(ctx, userID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("concurrent_create", func(t *testing.T) {
		userID := uuid.New()
		var (
			wg      sync.WaitGroup
			created atomic.Int32
		)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if err := registry.Create(ctx, model.SessionRecord{UserID: userID, Token: fmt.Sprint(i)}); err == nil {
					created.Add(1)
				}
			}(i)
		}
		wg.Wait()
		assert.Equal(t, int32(1), created.Load())
	})
}
