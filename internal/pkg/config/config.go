package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// defaultSeedLocations matches the two codes the system has always shipped with.
var defaultSeedLocations = []string{"QUAN01", "QUAN02"}

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=backupsecret"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	// WagePerHour is the flat hourly rate used by the summary engine.
	WagePerHour float64 `env:"WAGE_PER_HOUR, default=25000"`

	// SeedLocations are registered at startup. Defaults to QUAN01,QUAN02.
	SeedLocations []string `env:"SEED_LOCATIONS"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=attendance"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if len(cfg.SeedLocations) == 0 {
		cfg.SeedLocations = defaultSeedLocations
	}
	return &cfg
}
