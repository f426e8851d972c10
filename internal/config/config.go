package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "GATEWAY"
	defaultConfigDir  = "configs"
	defaultConfigName = "config"
)

var (
	ErrMissingSessionSecret = errors.New("session.secret must be set")
	ErrInvalidBackendURL    = errors.New("backend.url must be an absolute http(s) URL")
)

// Config is the full runtime configuration of the gateway.
type Config struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
	// TrustedProxies may set X-Forwarded-For; empty means the peer address is the client.
	TrustedProxies []string        `mapstructure:"trusted_proxies"`
	Backend        BackendConfig   `mapstructure:"backend"`
	Session        SessionConfig   `mapstructure:"session"`
	Activity       ActivityConfig  `mapstructure:"activity"`
	RateLimit      RateLimitConfig `mapstructure:"ratelimit"`
	Web            WebConfig       `mapstructure:"web"`
}

type BackendConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 keeps the transport default
}

type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	CookieName string        `mapstructure:"cookie_name"`
	MaxAge     time.Duration `mapstructure:"max_age"`
	Secure     bool          `mapstructure:"secure"`
}

type ActivityConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// RateLimitConfig throttles credential-forwarding routes per client IP. RPS 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type WebConfig struct {
	StaticDir string `mapstructure:"static_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "80")
	v.SetDefault("log_level", "info")
	v.SetDefault("trusted_proxies", []string{})
	v.SetDefault("backend.url", "http://backend:82")
	v.SetDefault("backend.timeout", "0s")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.max_age", "24h")
	v.SetDefault("session.secure", false)
	v.SetDefault("activity.db_path", "gateway.db")
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("web.static_dir", "")
}

// Load reads config.yml from the given directories (default "configs"), a
// .env file in the working directory if present, and GATEWAY_* environment
// variables, in increasing order of precedence.
func Load(dirs ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if len(dirs) == 0 {
		dirs = []string{defaultConfigDir}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetConfigName(defaultConfigName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the gateway cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return ErrMissingSessionSecret
	}
	u, err := url.Parse(c.Backend.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBackendURL, c.Backend.URL)
	}
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")
	return nil
}
