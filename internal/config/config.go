package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/currency"
)

const minJWTSecretLength = 16

type Config struct {
	DatabaseURL     string        `envconfig:"DATABASE_URL"     required:"true"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR"        default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT"       default:"json"`
	JWTSecret       string        `envconfig:"JWT_SECRET"       required:"true"`
	JWTExpiry       time.Duration `envconfig:"JWT_EXPIRY"       default:"168h"`
	Currency        string        `envconfig:"CURRENCY"         default:"INR"`
	DBMaxConns      int32         `envconfig:"DB_MAX_CONNS"     default:"10"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE"     default:"true"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS"     default:"*"`
	GinMode         string        `envconfig:"GIN_MODE"         default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("godotenv.Load: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("envconfig.Process: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}

	if c.JWTExpiry <= 0 {
		return errors.New("JWT_EXPIRY must be positive")
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("CURRENCY[%s]: %w", c.Currency, err)
	}

	if c.DBMaxConns < 1 {
		return errors.New("DB_MAX_CONNS must be positive")
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE[%s] must be one of debug, release, test", c.GinMode)
	}

	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	return nil
}

// StoreCurrency is valid once Validate passed.
func (c Config) StoreCurrency() currency.Unit {
	return currency.MustParseISO(c.Currency)
}
