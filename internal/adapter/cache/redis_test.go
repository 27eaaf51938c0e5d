package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/entity"
)

func TestRedisCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCache(client, "sentiment", "org/model", time.Minute, zap.NewNop())
	ctx := context.Background()

	t.Run("read failure is a miss", func(t *testing.T) {
		p, ok := c.Get(ctx, "k")

		assert.False(t, ok)
		assert.Nil(t, p)
	})

	t.Run("write failure does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			c.Set(ctx, "k", entity.NewPrediction("x", "LABEL_1", 0.9))
		})
	})

	t.Run("ping reports error", func(t *testing.T) {
		assert.Error(t, c.Ping(ctx))
	})
}

func TestRedisCache_Key(t *testing.T) {
	c := NewRedisCache(nil, "sentiment", "org/model", time.Minute, zap.NewNop()).(*RedisCache)

	assert.Equal(t, "sentiment:org/model:abc", c.key("abc"))
}

func newMiniredisCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, NewRedisCache(client, "sentiment", "org/model", ttl, zap.NewNop()).(*RedisCache)
}

func TestRedisCache_Miniredis(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips predictions", func(t *testing.T) {
		_, c := newMiniredisCache(t, time.Hour)
		c.Set(ctx, "k", entity.NewPrediction("Bu harika bir gün", "LABEL_1", 0.99871))

		p, ok := c.Get(ctx, "k")

		require.True(t, ok)
		assert.Equal(t, "Bu harika bir gün", p.Input)
		assert.Equal(t, "LABEL_1", p.Label)
		assert.Equal(t, "Positive", p.Sentiment)
		assert.Equal(t, 0.9987, p.Score)
	})

	t.Run("stores JSON under namespaced key with ttl", func(t *testing.T) {
		server, c := newMiniredisCache(t, 90*time.Second)
		c.Set(ctx, "k", entity.NewPrediction("kötü", "LABEL_2", 0.8))

		require.True(t, server.Exists("sentiment:org/model:k"))
		assert.Equal(t, 90*time.Second, server.TTL("sentiment:org/model:k"))

		raw, err := server.Get("sentiment:org/model:k")
		require.NoError(t, err)
		assert.JSONEq(t, `{"input":"kötü","label":"LABEL_2","sentiment":"Negative","score":0.8}`, raw)
	})

	t.Run("unknown key is a miss", func(t *testing.T) {
		_, c := newMiniredisCache(t, time.Hour)

		p, ok := c.Get(ctx, "absent")

		assert.False(t, ok)
		assert.Nil(t, p)
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		server, c := newMiniredisCache(t, time.Hour)
		require.NoError(t, server.Set("sentiment:org/model:k", "{not json"))

		p, ok := c.Get(ctx, "k")

		assert.False(t, ok)
		assert.Nil(t, p)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		server, c := newMiniredisCache(t, time.Minute)
		c.Set(ctx, "k", entity.NewPrediction("x", "LABEL_0", 0.5))

		server.FastForward(2 * time.Minute)

		_, ok := c.Get(ctx, "k")
		assert.False(t, ok)
	})

	t.Run("nil prediction is ignored", func(t *testing.T) {
		server, c := newMiniredisCache(t, time.Hour)
		c.Set(ctx, "k", nil)

		assert.False(t, server.Exists("sentiment:org/model:k"))
	})

	t.Run("ping succeeds", func(t *testing.T) {
		_, c := newMiniredisCache(t, time.Hour)

		assert.NoError(t, c.Ping(ctx))
	})
}
