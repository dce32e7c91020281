package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration accepts "15s" style values, which yaml.v3 does not decode into
// time.Duration on its own.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type AppCfg struct {
	Name         string   `yaml:"name"`
	Env          string   `yaml:"env"`
	Port         int      `yaml:"port"`
	MetricsPort  int      `yaml:"metrics_port"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
	IdleTimeout  Duration `yaml:"idle_timeout"`
}

type MongoCfg struct {
	URI               string `yaml:"uri"`
	Database          string `yaml:"database"`
	UserCollection    string `yaml:"user_collection"`
	ProfileCollection string `yaml:"profile_collection"`
	ProductCollection string `yaml:"product_collection"`
}

// RedisCfg is optional: an empty Addr disables the auth rate limiter.
type RedisCfg struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTCfg struct {
	Secret   string `yaml:"secret"`
	TTLHours int    `yaml:"ttl_hours"`
}

type SecurityCfg struct {
	PasswordHashCost    int      `yaml:"password_hash_cost"`
	AuthRateLimit       int      `yaml:"auth_rate_limit"`
	AuthRateLimitWindow Duration `yaml:"auth_rate_limit_window"`
}

type Config struct {
	App      AppCfg      `yaml:"app"`
	Mongo    MongoCfg    `yaml:"mongo"`
	Redis    RedisCfg    `yaml:"redis"`
	JWT      JWTCfg      `yaml:"jwt"`
	Security SecurityCfg `yaml:"security"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	overrideFromEnv(cfg)
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	override := func(env string, apply func(string)) {
		if v := os.Getenv(env); v != "" {
			apply(v)
		}
	}

	override("APP_ENV", func(v string) { cfg.App.Env = v })
	override("APP_PORT", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = n
		}
	})
	override("METRICS_PORT", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.App.MetricsPort = n
		}
	})
	override("MONGO_URI", func(v string) { cfg.Mongo.URI = v })
	override("MONGO_DB", func(v string) { cfg.Mongo.Database = v })
	override("REDIS_ADDR", func(v string) { cfg.Redis.Addr = v })
	override("REDIS_PASSWORD", func(v string) { cfg.Redis.Password = v })
	override("JWT_SECRET", func(v string) { cfg.JWT.Secret = v })
	override("JWT_TTL_HOURS", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.JWT.TTLHours = n
		}
	})
}

func applyDefaults(cfg *Config) {
	if cfg.Mongo.UserCollection == "" {
		cfg.Mongo.UserCollection = "users"
	}
	if cfg.Mongo.ProfileCollection == "" {
		cfg.Mongo.ProfileCollection = "profiles"
	}
	if cfg.Mongo.ProductCollection == "" {
		cfg.Mongo.ProductCollection = "products"
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 24
	}
	if cfg.Security.PasswordHashCost == 0 {
		cfg.Security.PasswordHashCost = 10
	}
	if cfg.Security.AuthRateLimit == 0 {
		cfg.Security.AuthRateLimit = 20
	}
	if cfg.Security.AuthRateLimitWindow == 0 {
		cfg.Security.AuthRateLimitWindow = Duration(time.Minute)
	}
	if cfg.App.ReadTimeout == 0 {
		cfg.App.ReadTimeout = Duration(15 * time.Second)
	}
	if cfg.App.WriteTimeout == 0 {
		cfg.App.WriteTimeout = Duration(15 * time.Second)
	}
	if cfg.App.IdleTimeout == 0 {
		cfg.App.IdleTimeout = Duration(60 * time.Second)
	}
}

func validate(cfg *Config) error {
	if cfg.App.Port == 0 {
		return errors.New("app.port is missing or invalid")
	}
	if cfg.Mongo.URI == "" {
		return errors.New("mongo.uri is empty (set MONGO_URI in env)")
	}
	if cfg.Mongo.Database == "" {
		return errors.New("mongo.database is missing")
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is required (set JWT_SECRET in env)")
	}
	return nil
}
