package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const minSecretKeyLength = 32

var (
	ErrSecretKeyMissing     = errors.New("SECRET_KEY is required")
	ErrSecretKeyPlaceholder = errors.New("SECRET_KEY uses an insecure placeholder")
	ErrSecretKeyTooShort    = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
)

var placeholderSecrets = map[string]struct{}{
	"change_me_in_production": {},
	"changeme":                {},
	"secret":                  {},
	"your-secret-key":         {},
	"your_secret_key":         {},
}

type Config struct {
	Port             string        `env:"PORT,default=8080"`
	DBDriver         string        `env:"DB_DRIVER,default=sqlite"`
	DBPath           string        `env:"DB_PATH,default=data/trainr.db"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	DBMaxOpenConns   int           `env:"DB_MAX_OPEN_CONNS,default=10"`
	DBMaxIdleConns   int           `env:"DB_MAX_IDLE_CONNS,default=5"`
	SecretKey        string        `env:"SECRET_KEY"`
	TokenTTL         time.Duration `env:"TOKEN_TTL,default=24h"`
	LogLevel         string        `env:"LOG_LEVEL,default=info"`
	LogFormat        string        `env:"LOG_FORMAT,default=text"`
	DefaultLanguage  string        `env:"DEFAULT_LANGUAGE,default=en"`
	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS,default=*"`
	ProxyHeader      string        `env:"PROXY_HEADER"`
	TrustedProxies   string        `env:"TRUSTED_PROXIES"`
	SeedCatalog      bool          `env:"SEED_CATALOG,default=false"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load reads envFile when it exists, then decodes the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks everything except the secret, which only serve needs.
func (cfg Config) Validate() error {
	switch cfg.DBDriver {
	case db.DriverSQLite:
		if strings.TrimSpace(cfg.DBPath) == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case db.DriverPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.DBMaxOpenConns < 0 || cfg.DBMaxIdleConns < 0 {
		return errors.New("database pool sizes must not be negative")
	}
	if cfg.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT %q", cfg.LogFormat)
	}
	if len(cfg.TrustedProxyList()) > 0 && strings.TrimSpace(cfg.ProxyHeader) == "" {
		return errors.New("TRUSTED_PROXIES requires PROXY_HEADER")
	}
	return nil
}

// ResolveSecretKey returns the token signing key or an error describing why
// the configured value is unusable.
func (cfg Config) ResolveSecretKey() ([]byte, error) {
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret == "" {
		return nil, ErrSecretKeyMissing
	}
	if _, ok := placeholderSecrets[strings.ToLower(secret)]; ok {
		return nil, ErrSecretKeyPlaceholder
	}
	if len(secret) < minSecretKeyLength {
		return nil, ErrSecretKeyTooShort
	}
	return []byte(secret), nil
}

func (cfg Config) DatabaseOptions() db.Options {
	return db.Options{
		Driver:       cfg.DBDriver,
		Path:         cfg.DBPath,
		DSN:          cfg.DatabaseURL,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	}
}

// TrustedProxyList splits TRUSTED_PROXIES on commas. Entries are IPs or
// CIDR ranges.
func (cfg Config) TrustedProxyList() []string {
	proxies := make([]string, 0)
	for _, proxy := range strings.Split(cfg.TrustedProxies, ",") {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			proxies = append(proxies, proxy)
		}
	}
	return proxies
}

func (cfg Config) CORSOrigins() string {
	origins := strings.TrimSpace(cfg.CORSAllowOrigins)
	if origins == "" {
		return "*"
	}
	return origins
}
