package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Seed         int64  `env:"SEA_BATTLE_SEED"`
	PlayerName   string `env:"SEA_BATTLE_PLAYER_NAME" envDefault:"You"`
	ComputerName string `env:"SEA_BATTLE_COMPUTER_NAME" envDefault:"Computer"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	NotifyChannel string `env:"NOTIFY_CHANNEL" envDefault:"notifications"`

	SpectatorAddr string        `env:"SPECTATOR_ADDR"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"SPECTATE_TOKEN_TTL" envDefault:"24h"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment variables.")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
