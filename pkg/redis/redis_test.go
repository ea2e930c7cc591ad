package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigOptions(t *testing.T) {
	t.Run("empty url", func(t *testing.T) {
		cfg := Config{}
		_, err := cfg.Options()
		assert.ErrorIs(t, err, ErrNoURL)
	})

	t.Run("timeouts applied", func(t *testing.T) {
		cfg := Config{URL: "redis://localhost:6379/2", ReadTimeout: 1, WriteTimeout: 2, DialTimeout: 3}
		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", opts.Addr)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, time.Second, opts.ReadTimeout)
		assert.Equal(t, 2*time.Second, opts.WriteTimeout)
		assert.Equal(t, 3*time.Second, opts.DialTimeout)
	})

	t.Run("bad scheme", func(t *testing.T) {
		cfg := Config{URL: "http://localhost"}
		_, err := cfg.Options()
		assert.Error(t, err)
	})
}

func TestConfigNew(t *testing.T) {
	srv := miniredis.RunT(t)

	cfg := Config{URL: "redis://" + srv.Addr(), ReadTimeout: 1, WriteTimeout: 1, DialTimeout: 1}
	client, err := cfg.New(context.Background())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := srv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
