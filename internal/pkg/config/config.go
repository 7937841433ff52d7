package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/krishilink/krishilink/internal/pkg/models"
)

// InitConfig loads configuration from the given env file (when present) and
// from the process environment. Environment variables take precedence so
// deployments can override anything in the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = getString(v, "APP_NAME", "")
	configs.App.Environment = getString(v, "APP_ENV", "local")
	configs.App.Debug = getBool(v, "APP_DEBUG", true)
	configs.App.Version = getString(v, "APP_VERSION", "")

	// Server config
	configs.Server.Host = getString(v, "SERVER_HOST", "")
	configs.Server.Port = getInt(v, "SERVER_PORT", 0)
	configs.Server.ReadTimeout = getInt(v, "SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = getInt(v, "SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = getInt(v, "SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = getString(v, "DB_HOST", "")
	configs.Database.Port = getInt(v, "DB_PORT", 5432)
	configs.Database.Username = getString(v, "DB_USERNAME", "")
	configs.Database.Password = getString(v, "DB_PASSWORD", "")
	configs.Database.Database = getString(v, "DB_DATABASE", "")
	configs.Database.SSLMode = getString(v, "DB_SSL_MODE", "disable")
	configs.Database.MaxConns = getInt(v, "DB_MAX_CONNS", 0)
	configs.Database.IdleConns = getInt(v, "DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = getString(v, "REDIS_HOST", "")
	configs.Redis.Port = getInt(v, "REDIS_PORT", 6379)
	configs.Redis.Password = getString(v, "REDIS_PASSWORD", "")
	configs.Redis.DB = getInt(v, "REDIS_DB", 0)
	configs.Redis.PoolSize = getInt(v, "REDIS_POOL_SIZE", 0)

	// NSQ config
	configs.NSQ.Address = getString(v, "NSQ_ADDRESS", "")
	configs.NSQ.LookupdAddress = getString(v, "NSQ_LOOKUPD_ADDRESS", "")

	// Session token config. Expiration defaults to seven days, in minutes.
	configs.JWT.Secret = getString(v, "JWT_SECRET", "")
	configs.JWT.Expiration = getInt(v, "JWT_EXPIRATION", 7*24*60)
	configs.JWT.Issuer = getString(v, "JWT_ISSUER", "krishilink")

	// OTP config, signed under its own secret
	configs.OTP.Secret = getString(v, "OTP_SECRET", "")
	configs.OTP.ExpiryMinutes = getInt(v, "OTP_EXPIRY_MINUTES", 10)

	// SMTP config
	configs.SMTP.Host = getString(v, "SMTP_HOST", "")
	configs.SMTP.Port = getInt(v, "SMTP_PORT", 587)
	configs.SMTP.Username = getString(v, "SMTP_USER", "")
	configs.SMTP.Password = getString(v, "SMTP_PASS", "")
	configs.SMTP.From = getString(v, "SMTP_FROM", "")
	configs.SMTP.TimeoutSeconds = getInt(v, "SMTP_TIMEOUT_SECONDS", 10)

	// Logger config
	configs.Logger.Level = getString(v, "LOG_LEVEL", "info")
	configs.Logger.FilePath = getString(v, "LOG_FILE_PATH", "")

	return configs
}

// Helpers that fall back to a default when the key is unset

func getString(v *viper.Viper, key, defaultValue string) string {
	if !v.IsSet(key) || v.GetString(key) == "" {
		return defaultValue
	}
	return v.GetString(key)
}

func getInt(v *viper.Viper, key string, defaultValue int) int {
	if !v.IsSet(key) || v.GetString(key) == "" {
		return defaultValue
	}
	return v.GetInt(key)
}

func getBool(v *viper.Viper, key string, defaultValue bool) bool {
	if !v.IsSet(key) || v.GetString(key) == "" {
		return defaultValue
	}
	return v.GetBool(key)
}
