package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "simulated", cfg.Payment.Provider)
	assert.Equal(t, "USD", cfg.Payment.Currency)
	assert.Equal(t, 3, cfg.Donation.HistoryRetries)
	assert.Equal(t, 20, cfg.Activity.FeedSize)
	assert.Equal(t, "@every 5m", cfg.Activity.BackfillSpec)
}

func TestInitConfig_LoadsDotenvForLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heartfund.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=9100\nPAYMENT_PROVIDER=midtrans\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv does not override variables that are already set
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PAYMENT_PROVIDER", "")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("PAYMENT_PROVIDER")

	cfg := InitConfig(path)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "midtrans", cfg.Payment.Provider)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("HEARTFUND_TEST_INT", "not-a-number")
	assert.Equal(t, 42, GetEnvAsInt("HEARTFUND_TEST_INT", 42))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("HEARTFUND_TEST_BOOL", "false")
	assert.False(t, GetEnvAsBool("HEARTFUND_TEST_BOOL", true))
	assert.True(t, GetEnvAsBool("HEARTFUND_TEST_MISSING_BOOL", true))
}
