package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=storefront-demo-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Storage StorageConfig
	Redis   RedisConfig
	Mongo   MongoConfig
}

// StorageConfig selects the key-value backend holding the state records.
type StorageConfig struct {
	// Backend is one of: sqlite, redis, mongo.
	Backend string `env:"STORAGE_BACKEND, default=sqlite"`
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `env:"SQLITE_PATH, default=storefront.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront_system"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
