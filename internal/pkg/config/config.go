package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream API, Redis)
// - default: Values common across all environments (timeouts, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Remote RemoteConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// RemoteConfig points at the upstream job-board API that owns all durable
// marketplace data. This service never persists notices or applications itself.
type RemoteConfig struct {
	BaseURL string        `envconfig:"REMOTE_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"REMOTE_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Remote: RemoteConfig{
			BaseURL: "http://localhost:9090/api",
			Timeout: 2 * time.Second,
		},
		Redis: RedisConfig{
			URL: "redis://localhost:16379/0",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "Asia/Seoul",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
