package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/pkg/identity"
)

func mintCacheToken(t *testing.T, duration time.Duration) string {
	t.Helper()
	token, err := identity.CreateTimedToken("agent", "tenant.auth0.test", []byte("secret"), duration, nil)
	require.NoError(t, err)
	return token
}

func TestTokenCache(t *testing.T) {
	t.Run("defaults under the home cache directory", func(t *testing.T) {
		cache, err := NewTokenCache("")
		require.NoError(t, err)
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".cache", "license-manager", "access_token"), cache.Path())
	})

	t.Run("save and load round trip", func(t *testing.T) {
		cache, err := NewTokenCache(t.TempDir())
		require.NoError(t, err)

		token := mintCacheToken(t, time.Hour)
		require.NoError(t, cache.Save(token))
		assert.Equal(t, token, cache.Load())
	})

	t.Run("cache file is owner-only", func(t *testing.T) {
		cache, err := NewTokenCache(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, cache.Save(mintCacheToken(t, time.Hour)))

		info, err := os.Stat(cache.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("empty cache loads nothing", func(t *testing.T) {
		cache, err := NewTokenCache(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, cache.Load())
	})

	t.Run("expired token is dropped and the file removed", func(t *testing.T) {
		cache, err := NewTokenCache(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, cache.Save(mintCacheToken(t, -time.Minute)))

		assert.Empty(t, cache.Load())
		_, err = os.Stat(cache.Path())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("token expiring within the margin is treated as expired", func(t *testing.T) {
		cache, err := NewTokenCache(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, cache.Save(mintCacheToken(t, 2*time.Second)))

		assert.Empty(t, cache.Load())
	})

	t.Run("garbage in the cache file is dropped", func(t *testing.T) {
		dir := t.TempDir()
		cache, err := NewTokenCache(dir)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(cache.Path(), []byte("not-a-jwt"), 0o600))

		assert.Empty(t, cache.Load())
	})

	t.Run("clear removes the file and tolerates absence", func(t *testing.T) {
		cache, err := NewTokenCache(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, cache.Save(mintCacheToken(t, time.Hour)))

		require.NoError(t, cache.Clear())
		require.NoError(t, cache.Clear())
		assert.Empty(t, cache.Load())
	})
}

func TestTokenUsable(t *testing.T) {
	t.Run("token without exp never expires", func(t *testing.T) {
		token, err := identity.CreateTimedToken("agent", "iss", []byte("secret"), 0, nil)
		require.NoError(t, err)
		assert.True(t, tokenUsable(token))
	})

	t.Run("fresh token is usable", func(t *testing.T) {
		assert.True(t, tokenUsable(mintCacheToken(t, time.Hour)))
	})

	t.Run("expired token is not", func(t *testing.T) {
		assert.False(t, tokenUsable(mintCacheToken(t, -time.Minute)))
	})
}
