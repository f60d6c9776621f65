// Package config loads server configuration. Values come from built-in
// defaults, then an optional YAML file named by LISTKEEPER_CONFIG, then
// LISTKEEPER_* environment variables, later sources winning.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr        string `yaml:"http_addr"`
	DatabaseDSN     string `yaml:"database_dsn"`
	TodosTable      string `yaml:"todos_table"`
	NotesTable      string `yaml:"notes_table"`
	TokenSecret     string `yaml:"token_secret"`
	MaxRequestBytes int64  `yaml:"max_request_bytes"`
}

func defaults() Config {
	return Config{
		HTTPAddr:        ":8080",
		DatabaseDSN:     "file:listkeeper.db?cache=shared&mode=rwc",
		TodosTable:      "todos",
		NotesTable:      "notes",
		MaxRequestBytes: 1 << 20,
	}
}

// Load builds the effective configuration. An empty TokenSecret means
// bearer tokens are decoded without signature verification; a warning is
// logged so the mode is visible in deployment logs.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("LISTKEEPER_CONFIG"); path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if cfg.TokenSecret == "" {
		log.Println("WARNING: no LISTKEEPER_TOKEN_SECRET set; token payloads are trusted without signature verification")
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.HTTPAddr = getEnv("LISTKEEPER_HTTP_ADDR", cfg.HTTPAddr)
	cfg.DatabaseDSN = getEnv("LISTKEEPER_DB_DSN", cfg.DatabaseDSN)
	cfg.TodosTable = getEnv("LISTKEEPER_TODOS_TABLE", cfg.TodosTable)
	cfg.NotesTable = getEnv("LISTKEEPER_NOTES_TABLE", cfg.NotesTable)
	cfg.TokenSecret = getEnv("LISTKEEPER_TOKEN_SECRET", cfg.TokenSecret)
	if v, ok := os.LookupEnv("LISTKEEPER_MAX_REQUEST_BYTES"); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxRequestBytes = n
		}
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
