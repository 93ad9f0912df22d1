package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	PostgresMigrate  bool   `env:"POSTGRES_MIGRATE" envDefault:"true"`
	Kafka            Kafka
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS"`
	ClientEventsTopic string   `env:"KAFKA_CLIENT_EVENTS_TOPIC" envDefault:"crm.client.events"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
