package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress string
	PostgresConn  string
	MigrationsUrl string
	DatabaseName  string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("MIGRATIONS_URL", "file://migrations")

	cfg := &Config{
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		PostgresConn:  v.GetString("POSTGRES_CONN"),
		MigrationsUrl: v.GetString("MIGRATIONS_URL"),
		DatabaseName:  v.GetString("POSTGRES_DATABASE"),
	}

	if cfg.PostgresConn == "" {
		return nil, errors.New("POSTGRES_CONN is required")
	}

	return cfg, nil
}
