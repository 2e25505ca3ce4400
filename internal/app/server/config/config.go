package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// localSecret подписывает токены только при APP_ENV=local.
	localSecret = "local-development-secret"

	DefaultEnvFile = ".env"
)

var ErrNoSecret = errors.New("JWT_SECRET must be set outside the local environment")

type Config struct {
	Env      string
	DB       DB
	Server   Server
	Logger   Logger
	Auth     Auth
	Upstream Upstream
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
}

type Logger struct {
	LogLevel string
}

// Auth: срок жизни токена не настраивается, всегда session.DefaultTTL.
type Auth struct {
	Secret string
}

type Upstream struct {
	Timeout           time.Duration
	RPS               float64
	VisualCrossingKey string
	RapidAPIKey       string
	RapidAPIHost      string
	UnsplashKey       string
}

// Load reads envFile (if it exists) into the process environment and then
// builds the config from environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("app_env", EnvProd)
	v.SetDefault("run_address", ":3000")
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("log_level", "")
	v.SetDefault("upstream_timeout", 10*time.Second)
	v.SetDefault("upstream_rps", 5)
	v.SetDefault("rapidapi_host", "booking-com15.p.rapidapi.com")
	for _, key := range []string{"database_uri", "jwt_secret", "visual_crossing_api_key", "rapidapi_key", "unsplash_api_key"} {
		v.SetDefault(key, "")
	}
	v.AutomaticEnv()

	cfg := &Config{
		Env: strings.ToLower(v.GetString("app_env")),
		DB: DB{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{RunAddress: v.GetString("run_address")},
		Logger: Logger{LogLevel: v.GetString("log_level")},
		Auth: Auth{
			Secret: v.GetString("jwt_secret"),
		},
		Upstream: Upstream{
			Timeout:           v.GetDuration("upstream_timeout"),
			RPS:               v.GetFloat64("upstream_rps"),
			VisualCrossingKey: v.GetString("visual_crossing_api_key"),
			RapidAPIKey:       v.GetString("rapidapi_key"),
			RapidAPIHost:      v.GetString("rapidapi_host"),
			UnsplashKey:       v.GetString("unsplash_api_key"),
		},
	}

	if cfg.Auth.Secret == "" {
		if cfg.Env != EnvLocal {
			return nil, ErrNoSecret
		}
		cfg.Auth.Secret = localSecret
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load(DefaultEnvFile)
	if err != nil {
		panic(err)
	}
	return cfg
}
