package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authgate-server/internal/model"
)

func TestOTPStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewOTPStore()

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", "111111", time.Minute))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "111111", got)

	require.NoError(t, s.Set(ctx, "k", "222222", time.Minute))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "222222", got)

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestOTPStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewOTPStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "short", "111111", time.Minute))
	require.NoError(t, s.Set(ctx, "forever", "222222", 0))

	now = now.Add(2 * time.Minute)

	_, err := s.Get(ctx, "short")
	require.ErrorIs(t, err, model.ErrNotFound)

	got, err := s.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "222222", got)

	code, err := s.SetIfAbsent(ctx, "short", "333333", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "333333", code)
}

func TestOTPStore_SetIfAbsentReusesLiveCode(t *testing.T) {
	ctx := context.Background()
	s := NewOTPStore()

	first, err := s.SetIfAbsent(ctx, "k", "111111", time.Minute)
	require.NoError(t, err)
	second, err := s.SetIfAbsent(ctx, "k", "999999", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "111111", first)
	assert.Equal(t, "111111", second)
}

func TestOTPStore_CompareAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewOTPStore()
	require.NoError(t, s.Set(ctx, "k", "123456", 0))

	ok, err := s.CompareAndDelete(ctx, "k", "999999")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CompareAndDelete(ctx, "k", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CompareAndDelete(ctx, "k", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPStore_ConcurrentConsumeSucceedsOnce(t *testing.T) {
	ctx := context.Background()
	s := NewOTPStore()
	require.NoError(t, s.Set(ctx, "k", "123456", time.Minute))

	var (
		wg      sync.WaitGroup
		matched atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.CompareAndDelete(ctx, "k", "123456")
			assert.NoError(t, err)
			if ok {
				matched.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), matched.Load())
}

func TestOTPStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewOTPStore()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("k%d", i), fmt.Sprintf("%06d", i), 0))
	}
	require.NoError(t, s.Delete(ctx, "k1"))

	_, err := s.Get(ctx, "k0")
	require.NoError(t, err)
	_, err = s.Get(ctx, "k1")
	require.ErrorIs(t, err, model.ErrNotFound)
}
