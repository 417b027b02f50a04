package distlock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisLock_ExclusiveUntilReleased(t *testing.T) {
	_, client := newRedis(t)
	ctx := context.Background()

	a := NewRedisLock(client, "contact:1", time.Minute)
	b := NewRedisLock(client, "contact:1", time.Minute)

	ok, err := a.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must not acquire")

	require.NoError(t, a.Release(ctx))

	ok, err = b.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_ReleaseDoesNotStealForeignLock(t *testing.T) {
	mr, client := newRedis(t)
	ctx := context.Background()

	a := NewRedisLock(client, "contact:2", time.Minute)
	b := NewRedisLock(client, "contact:2", time.Minute)

	ok, _ := a.Acquire(ctx)
	require.True(t, ok)

	require.NoError(t, b.Release(ctx))
	assert.True(t, mr.Exists(KeyPrefix+"contact:2"))
}

func TestRedisLock_Expires(t *testing.T) {
	mr, client := newRedis(t)
	ctx := context.Background()

	a := NewRedisLock(client, "contact:3", time.Second)
	ok, _ := a.Acquire(ctx)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	ok, err := NewRedisLock(client, "contact:3", time.Second).Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewRedisFactory(t *testing.T) {
	assert.Nil(t, NewRedisFactory(nil, time.Second))

	_, client := newRedis(t)
	f := NewRedisFactory(client, time.Second)
	require.NotNil(t, f)

	ok, err := f("k").Acquire(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAcquireWithin(t *testing.T) {
	_, client := newRedis(t)
	ctx := context.Background()

	holder := NewRedisLock(client, "contact:5", time.Minute)
	ok, _ := holder.Acquire(ctx)
	require.True(t, ok)

	waiter := NewRedisLock(client, "contact:5", time.Minute)
	ok, err := AcquireWithin(ctx, waiter, 30*time.Millisecond, 10*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)

	go func() {
		time.Sleep(20 * time.Millisecond)
		holder.Release(ctx)
	}()
	ok, err = AcquireWithin(ctx, waiter, time.Second, 5*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)
}
