package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hpc-toolchain/license-manager/pkg/identity"
)

// expiryMargin is how close to its exp claim a cached token is still
// considered usable. A token expiring within the margin is refetched so it
// cannot lapse mid-request.
const expiryMargin = 10 * time.Second

// TokenCache persists the access token across process runs so the agent
// does not hammer the identity provider every stat interval.
type TokenCache struct {
	path string
}

// NewTokenCache places the cache file under dir. An empty dir defaults to
// $HOME/.cache/license-manager.
func NewTokenCache(dir string) (*TokenCache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "license-manager")
	}
	return &TokenCache{path: filepath.Join(dir, "access_token")}, nil
}

// Path returns the cache file location.
func (tc *TokenCache) Path() string {
	return tc.path
}

// Load returns the cached token, or "" when the cache is empty or the
// token is expired. A stale cache file is removed.
func (tc *TokenCache) Load() string {
	data, err := os.ReadFile(tc.path)
	if err != nil {
		return ""
	}

	token := string(data)
	if tokenUsable(token) {
		return token
	}

	_ = os.Remove(tc.path)
	return ""
}

// Save writes the token with owner-only permissions. The write goes through
// a temp file and rename so a concurrent reader never sees a partial token.
func (tc *TokenCache) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(tc.path), 0o700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(tc.path), ".access_token-*")
	if err != nil {
		return fmt.Errorf("failed to create cache temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set cache permissions: %w", err)
	}
	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), tc.path); err != nil {
		return fmt.Errorf("failed to move cache file into place: %w", err)
	}
	return nil
}

// Clear removes the cache file.
func (tc *TokenCache) Clear() error {
	err := os.Remove(tc.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// tokenUsable reports whether the token's exp claim clears the expiry
// margin. Tokens without an exp claim never expire.
func tokenUsable(token string) bool {
	claims, err := identity.DecodeUnverified(token)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	if exp == nil {
		return true
	}
	return time.Now().Add(expiryMargin).Before(exp.Time)
}
