package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAYMENT_SIMULATION_DELAY", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.PaymentDelay)
	assert.NotEmpty(t, cfg.GeminiBaseURL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAYMENT_SIMULATION_DELAY", "150ms")
	t.Setenv("HEALTH_PING_URLS", " https://a.example/health , ,https://b.example ")
	t.Setenv("ALLOW_CROSS_SITE_DEV", "TRUE")
	t.Setenv("SEED_DEMO_LISTINGS", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 150*time.Millisecond, cfg.PaymentDelay)
	assert.Equal(t, []string{"https://a.example/health", "https://b.example"}, cfg.HealthPingURLs)
	assert.True(t, cfg.AllowCrossSiteDev)
	assert.False(t, cfg.SeedDemoListings)
}
