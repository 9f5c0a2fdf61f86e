// Package agent runs on each workload cluster: it polls the vendor license
// servers, reports live usage to the ledger, and releases bookings whose
// jobs have run past their grace time.
package agent

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings is the agent configuration, loaded from the environment.
type Settings struct {
	// BackendBaseURL is the ledger root including the base path.
	BackendBaseURL string

	AuthDomain       string
	AuthAudience     string
	AuthClientID     string
	AuthClientSecret string

	// AuthSecret, when set, lets the agent validate bearer tokens on its
	// trigger endpoint. Without it the trigger is disabled and only the
	// timer drives reconciliation.
	AuthSecret string

	// Vendor tool locations. Defaults assume the tools are on PATH.
	LmutilPath     string
	LsdynaPath     string
	RlmutilPath    string
	LmxendutilPath string
	OlixtoolPath   string
	SqueuePath     string

	// StatInterval is the pause between reconciliation cycles.
	StatInterval time.Duration

	// ReconcileTimeout bounds one full cycle.
	ReconcileTimeout time.Duration

	// Port the trigger/health surface listens on.
	Port string

	// TokenCacheDir overrides the access-token cache location.
	TokenCacheDir string
}

// LoadSettingsFromEnv reads the agent settings. Missing required values or
// unparseable durations return an error; the caller is expected to exit.
func LoadSettingsFromEnv() (*Settings, error) {
	s := &Settings{
		BackendBaseURL:   os.Getenv("BACKEND_BASE_URL"),
		AuthDomain:       os.Getenv("AUTH0_DOMAIN"),
		AuthAudience:     os.Getenv("AUTH0_AUDIENCE"),
		AuthClientID:     os.Getenv("AUTH0_CLIENT_ID"),
		AuthClientSecret: os.Getenv("AUTH0_CLIENT_SECRET"),
		AuthSecret:       os.Getenv("AUTH0_SECRET"),
		LmutilPath:       getEnvOrDefault("LMUTIL_PATH", "lmutil"),
		LsdynaPath:       getEnvOrDefault("LSDYNA_PATH", "lstc_qrun"),
		RlmutilPath:      getEnvOrDefault("RLMUTIL_PATH", "rlmutil"),
		LmxendutilPath:   getEnvOrDefault("LMXENDUTIL_PATH", "lmxendutil"),
		OlixtoolPath:     getEnvOrDefault("OLIXTOOL_PATH", "olixtool"),
		SqueuePath:       getEnvOrDefault("SQUEUE_PATH", "squeue"),
		Port:             getEnvOrDefault("AGENT_PORT", "8081"),
		TokenCacheDir:    os.Getenv("TOKEN_CACHE_DIR"),
	}

	for _, required := range []struct{ key, value string }{
		{"BACKEND_BASE_URL", s.BackendBaseURL},
		{"AUTH0_DOMAIN", s.AuthDomain},
		{"AUTH0_AUDIENCE", s.AuthAudience},
		{"AUTH0_CLIENT_ID", s.AuthClientID},
		{"AUTH0_CLIENT_SECRET", s.AuthClientSecret},
	} {
		if required.value == "" {
			return nil, fmt.Errorf("%s is required", required.key)
		}
	}

	var err error
	if s.StatInterval, err = secondsFromEnv("STAT_INTERVAL", 60*time.Second); err != nil {
		return nil, err
	}
	if s.ReconcileTimeout, err = secondsFromEnv("RECONCILE_TIMEOUT", 5*time.Minute); err != nil {
		return nil, err
	}
	if s.StatInterval <= 0 {
		return nil, fmt.Errorf("STAT_INTERVAL must be positive")
	}
	if s.ReconcileTimeout <= 0 {
		return nil, fmt.Errorf("RECONCILE_TIMEOUT must be positive")
	}

	return s, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func secondsFromEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer number of seconds: %w", key, err)
	}
	return time.Duration(seconds) * time.Second, nil
}
