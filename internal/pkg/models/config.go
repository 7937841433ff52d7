package models

import "fmt"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	OTP      OTPConfig
	SMTP     SMTPConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string
	LookupdAddress string
}

// JWTConfig contains session token configuration.
// Expiration is in minutes; the default is seven days.
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// OTPConfig contains one-time passcode configuration.
// The OTP signing secret is distinct from the session secret so that a
// leaked key compromises only one of the two token families.
type OTPConfig struct {
	Secret        string
	ExpiryMinutes int
}

// SMTPConfig contains mail delivery configuration
type SMTPConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	From           string
	TimeoutSeconds int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// Validate checks that configuration required at startup is present.
// Signing secrets must never fall back to baked-in defaults, so their
// absence is a deployment error rather than something to paper over.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is not set; refusing to start without a session signing secret")
	}
	if c.OTP.Secret == "" {
		return fmt.Errorf("OTP_SECRET is not set; refusing to start without an OTP signing secret")
	}
	return nil
}
