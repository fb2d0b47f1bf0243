package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage selecciona el colaborador de persistencia.
type Storage string

const (
	StorageSQLite   Storage = "sqlite"
	StoragePostgres Storage = "postgres"
	StorageMemory   Storage = "memory"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Storage    Storage `env:"STORAGE" envDefault:"sqlite"`
	SQLitePath string  `env:"SQLITE_PATH" envDefault:"vet_clinic.db"`
	DBDSN      string  `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"vet-clinic-ledger"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

// Load lee la configuración desde el entorno.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Storage = Storage(strings.ToLower(strings.TrimSpace(string(cfg.Storage))))
	switch cfg.Storage {
	case StorageSQLite, StorageMemory:
	case StoragePostgres:
		if strings.TrimSpace(cfg.DBDSN) == "" {
			return Config{}, fmt.Errorf("DB_DSN is required when STORAGE=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
