package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	Version   = "0.3.0"
	EnvPrefix = "levelarea"
)

type Config struct {
	Source      string `envconfig:"SOURCE"`
	LevelColumn string `envconfig:"LEVEL_COLUMN" default:"level"`
	AreaColumn  string `envconfig:"AREA_COLUMN" default:"area"`
	OutputDir   string `envconfig:"OUTPUT_DIR" default:"charts"`
	Format      string `envconfig:"FORMAT" default:"png"`
	Width       int    `envconfig:"WIDTH" default:"1024"`
	Height      int    `envconfig:"HEIGHT" default:"640"`
	DuckDBDSN   string `envconfig:"DUCKDB_DSN"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("error loading environment variables: %w", err)
	}
	return cfg, nil
}
