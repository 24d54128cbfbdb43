package config

import (
	"log"
	"os"
	"strconv"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/joho/godotenv"
)

// InitConfig loads configPath as a dotenv file for local runs and reads the
// configuration from the environment
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "heartfund")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "heartfund")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "heartfund")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)
	configs.Logger.Type = GetEnv("LOG_TYPE", "stdout")

	// Payment config
	configs.Payment.Provider = GetEnv("PAYMENT_PROVIDER", "simulated")
	configs.Payment.MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY", "")
	configs.Payment.MidtransEnv = GetEnv("MIDTRANS_ENV", "sandbox")
	configs.Payment.Currency = GetEnv("PAYMENT_CURRENCY", "USD")
	configs.Payment.TimeoutSeconds = GetEnvAsInt("PAYMENT_TIMEOUT_SECONDS", 30)

	// Donation config
	configs.Donation.HistoryRetries = GetEnvAsInt("DONATION_HISTORY_RETRIES", 3)
	configs.Donation.RetryBaseDelayMs = GetEnvAsInt("DONATION_RETRY_BASE_DELAY_MS", 100)
	configs.Donation.RateLimit = GetEnvAsInt("DONATION_RATE_LIMIT", 10)
	configs.Donation.RateLimitPeriodSec = GetEnvAsInt("DONATION_RATE_PERIOD_SECONDS", 60)

	// Activity config
	configs.Activity.FeedSize = GetEnvAsInt("ACTIVITY_FEED_SIZE", 20)
	configs.Activity.BackfillSpec = GetEnv("ACTIVITY_BACKFILL_SPEC", "@every 5m")

	return configs
}

// GetEnv returns the value of key, or defaultValue when it is unset or empty
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	return getEnvAs(key, defaultValue, strconv.Atoi)
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	return getEnvAs(key, defaultValue, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	return getEnvAs(key, defaultValue, strconv.ParseBool)
}

// getEnvAs parses key with parse. Unparsable values fall back to defaultValue with a warning.
func getEnvAs[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw := GetEnv(key, "")
	if raw == "" {
		return defaultValue
	}

	value, err := parse(raw)
	if err != nil {
		log.Printf("Warning: invalid value %q for %s, using default: %v", raw, key, defaultValue)
		return defaultValue
	}
	return value
}
