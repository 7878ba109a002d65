package app

import (
	"testing"
	"time"

	"github.com/lubana/membership/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "lubana-membership", cfg.Issuer)
	require.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	require.Equal(t, "membership.db", cfg.DatabaseFile)
	require.Equal(t, 12*time.Hour, cfg.AccessTTL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.ReconcileInterval)
	require.Equal(t, httpx.DefaultRateLimits(), cfg.RateLimits)
	require.Empty(t, cfg.AdminUsername)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "firestore")
	t.Setenv("FIRESTORE_PROJECT_ID", "lubana-prod")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("RECONCILE_INTERVAL", "15")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "not-a-duration")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "50")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("METRICS_USER", "prom")

	cfg := LoadConfig()

	require.Equal(t, StoreDriverFirestore, cfg.StoreDriver)
	require.Equal(t, "lubana-prod", cfg.FirestoreProjectID)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Minute, cfg.AccessTTL)
	require.Equal(t, 15*time.Minute, cfg.ReconcileInterval)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 50, cfg.RateLimits.Strict.RequestsPerWindow)
	require.Equal(t, "owner", cfg.AdminUsername)
	require.Equal(t, "prom", cfg.MetricsUser)
}
