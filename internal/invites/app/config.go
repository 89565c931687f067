package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env                 string        `env:"ENV"                   envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"`
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	// DatabaseDriver selects the record store: sqlite or postgres.
	DatabaseDriver string `env:"VOUCH_DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseFile   string `env:"VOUCH_DATABASE_FILE"   envDefault:"vouch.db"`
	DatabaseURL    string `env:"VOUCH_DATABASE_URL"`

	// Access tokens come from the identity provider. Either a shared HS256
	// secret or a JWKS URL must be set; the secret wins when both are.
	JWTSecret           string        `env:"VOUCH_JWT_SECRET"`
	JWTIssuer           string        `env:"VOUCH_JWT_ISSUER"`
	JWTAudience         []string      `env:"VOUCH_JWT_AUDIENCE"          envSeparator:","`
	JWTLeeway           time.Duration `env:"VOUCH_JWT_LEEWAY"            envDefault:"30s"`
	JWKSURL             string        `env:"VOUCH_JWKS_URL"`
	JWKSRefreshInterval time.Duration `env:"VOUCH_JWKS_REFRESH_INTERVAL" envDefault:"10m"`

	InviteWindow      time.Duration `env:"VOUCH_INVITE_WINDOW"       envDefault:"24h"`
	InviteMaxAttempts int           `env:"VOUCH_INVITE_MAX_ATTEMPTS" envDefault:"3"`

	BootstrapToken string `env:"VOUCH_BOOTSTRAP_TOKEN"` // empty disables /v1/bootstrap
	MetricsEnabled bool   `env:"VOUCH_METRICS_ENABLED" envDefault:"true"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case "sqlite":
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("VOUCH_DATABASE_FILE is required for the sqlite driver"))
		}
	case "postgres":
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("VOUCH_DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown VOUCH_DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.JWTSecret == "" && c.JWKSURL == "" {
		errs = append(errs, errors.New("one of VOUCH_JWT_SECRET or VOUCH_JWKS_URL is required"))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		errs = append(errs, errors.New("VOUCH_JWT_SECRET must be at least 32 bytes"))
	}
	if c.InviteWindow <= 0 {
		errs = append(errs, errors.New("VOUCH_INVITE_WINDOW must be positive"))
	}
	if c.InviteMaxAttempts < 1 {
		errs = append(errs, errors.New("VOUCH_INVITE_MAX_ATTEMPTS must be at least 1"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %d", c.Port))
	}

	return errors.Join(errs...)
}
