package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func testDomain() DomainConfig {
	return DomainConfig{
		Domain:   "tenant.auth0.test",
		Audience: "https://license-manager.test",
		Secret:   testSecret,
	}
}

func mintToken(t *testing.T, secret []byte, duration time.Duration, extra map[string]any) string {
	t.Helper()
	token, err := CreateTimedToken("user@example.com", "tenant.auth0.test", secret, duration, extra)
	require.NoError(t, err)
	return token
}

func TestNewValidator(t *testing.T) {
	t.Run("requires at least one domain", func(t *testing.T) {
		_, err := NewValidator()
		require.Error(t, err)
	})

	t.Run("rejects incomplete domain", func(t *testing.T) {
		_, err := NewValidator(DomainConfig{Domain: "x"})
		require.Error(t, err)
	})

	t.Run("accepts complete domain", func(t *testing.T) {
		v, err := NewValidator(testDomain())
		require.NoError(t, err)
		assert.NotNil(t, v)
	})
}

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator(testDomain())
	require.NoError(t, err)

	t.Run("round trip extracts the payload", func(t *testing.T) {
		token := mintToken(t, testSecret, time.Hour, map[string]any{
			"aud":         "https://license-manager.test",
			"azp":         "cluster-client-1",
			"email":       "user@example.com",
			"permissions": []string{ScopeClusterView, ScopeBookingEdit},
		})

		payload, err := v.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", payload.Subject)
		assert.Equal(t, "cluster-client-1", payload.ClientID)
		assert.Equal(t, "user@example.com", payload.Email)
		assert.True(t, payload.HasScope(ScopeClusterView))
		assert.True(t, payload.HasScope(ScopeBookingEdit))
		assert.False(t, payload.HasScope(ScopeReconcile))
		assert.WithinDuration(t, time.Now().Add(time.Hour), payload.ExpiresAt, 5*time.Second)
	})

	t.Run("rejects wrong signing secret", func(t *testing.T) {
		token := mintToken(t, []byte("some-other-secret"), time.Hour, map[string]any{
			"aud": "https://license-manager.test",
		})
		_, err := v.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects wrong audience", func(t *testing.T) {
		token := mintToken(t, testSecret, time.Hour, map[string]any{
			"aud": "https://somewhere-else.test",
		})
		_, err := v.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects missing exp", func(t *testing.T) {
		token := mintToken(t, testSecret, 0, map[string]any{
			"aud": "https://license-manager.test",
		})
		_, err := v.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token := mintToken(t, testSecret, time.Hour, map[string]any{
			"aud": "https://license-manager.test",
			"exp": jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		_, err := v.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tolerates expiry within leeway", func(t *testing.T) {
		token := mintToken(t, testSecret, time.Hour, map[string]any{
			"aud": "https://license-manager.test",
			"exp": jwt.NewNumericDate(time.Now().Add(-500 * time.Millisecond)),
		})
		_, err := v.Validate(token)
		assert.NoError(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := v.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidator_AdminOverlay(t *testing.T) {
	admin := DomainConfig{
		Domain:    "admin.auth0.test",
		Audience:  "https://admin.test",
		Secret:    []byte("admin-secret"),
		MatchKeys: map[string]string{"org_name": "hpc-admins"},
	}
	v, err := NewValidator(testDomain(), admin)
	require.NoError(t, err)

	t.Run("accepts admin token carrying the match claim", func(t *testing.T) {
		token, err := CreateTimedToken("admin@example.com", "admin.auth0.test", admin.Secret, time.Hour, map[string]any{
			"aud":      "https://admin.test",
			"org_name": "hpc-admins",
		})
		require.NoError(t, err)

		payload, err := v.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", payload.Subject)
	})

	t.Run("rejects admin token without the match claim", func(t *testing.T) {
		token, err := CreateTimedToken("admin@example.com", "admin.auth0.test", admin.Secret, time.Hour, map[string]any{
			"aud": "https://admin.test",
		})
		require.NoError(t, err)

		_, err = v.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractOrganizationID(t *testing.T) {
	t.Run("absent claim yields empty id", func(t *testing.T) {
		id, err := extractOrganizationID(jwt.MapClaims{})
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("single key is the id", func(t *testing.T) {
		id, err := extractOrganizationID(jwt.MapClaims{
			"organization": map[string]any{"org-abc": map[string]any{"name": "HPC"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "org-abc", id)
	})

	t.Run("empty object is rejected", func(t *testing.T) {
		_, err := extractOrganizationID(jwt.MapClaims{
			"organization": map[string]any{},
		})
		require.Error(t, err)
	})

	t.Run("multiple keys are rejected", func(t *testing.T) {
		_, err := extractOrganizationID(jwt.MapClaims{
			"organization": map[string]any{"org-a": nil, "org-b": nil},
		})
		require.Error(t, err)
	})

	t.Run("non-object payload is rejected", func(t *testing.T) {
		_, err := extractOrganizationID(jwt.MapClaims{"organization": "org-abc"})
		require.Error(t, err)
	})
}

func TestDecodeUnverified(t *testing.T) {
	token := mintToken(t, testSecret, time.Hour, map[string]any{"azp": "cluster-client-1"})

	claims, err := DecodeUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims["sub"])
	assert.Equal(t, "cluster-client-1", claims["azp"])

	_, err = DecodeUnverified("garbage")
	require.Error(t, err)
}
