package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BACKEND_BASE_URL", "http://ledger.internal/lm")
	t.Setenv("AUTH0_DOMAIN", "tenant.auth0.test")
	t.Setenv("AUTH0_AUDIENCE", "https://license-manager.test")
	t.Setenv("AUTH0_CLIENT_ID", "agent-client")
	t.Setenv("AUTH0_CLIENT_SECRET", "agent-secret")
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		s, err := LoadSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "lmutil", s.LmutilPath)
		assert.Equal(t, "lstc_qrun", s.LsdynaPath)
		assert.Equal(t, "rlmutil", s.RlmutilPath)
		assert.Equal(t, "lmxendutil", s.LmxendutilPath)
		assert.Equal(t, "olixtool", s.OlixtoolPath)
		assert.Equal(t, "squeue", s.SqueuePath)
		assert.Equal(t, "8081", s.Port)
		assert.Equal(t, 60*time.Second, s.StatInterval)
		assert.Equal(t, 5*time.Minute, s.ReconcileTimeout)
		assert.Empty(t, s.AuthSecret)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LMUTIL_PATH", "/opt/flexlm/lmutil")
		t.Setenv("STAT_INTERVAL", "30")
		t.Setenv("RECONCILE_TIMEOUT", "120")
		t.Setenv("AGENT_PORT", "9090")
		t.Setenv("AUTH0_SECRET", "trigger-secret")

		s, err := LoadSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "/opt/flexlm/lmutil", s.LmutilPath)
		assert.Equal(t, 30*time.Second, s.StatInterval)
		assert.Equal(t, 2*time.Minute, s.ReconcileTimeout)
		assert.Equal(t, "9090", s.Port)
		assert.Equal(t, "trigger-secret", s.AuthSecret)
	})

	t.Run("missing required value", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("AUTH0_CLIENT_SECRET", "")

		_, err := LoadSettingsFromEnv()
		require.ErrorContains(t, err, "AUTH0_CLIENT_SECRET")
	})

	t.Run("non-numeric interval", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("STAT_INTERVAL", "soon")

		_, err := LoadSettingsFromEnv()
		require.Error(t, err)
	})

	t.Run("non-positive interval", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("STAT_INTERVAL", "0")

		_, err := LoadSettingsFromEnv()
		require.Error(t, err)
	})
}
