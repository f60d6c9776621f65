package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTKEEPER_CONFIG",
		"LISTKEEPER_HTTP_ADDR",
		"LISTKEEPER_DB_DSN",
		"LISTKEEPER_TODOS_TABLE",
		"LISTKEEPER_NOTES_TABLE",
		"LISTKEEPER_TOKEN_SECRET",
		"LISTKEEPER_MAX_REQUEST_BYTES",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.TodosTable != "todos" || cfg.NotesTable != "notes" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.TokenSecret != "" {
		t.Fatalf("secret should default empty, got %q", cfg.TokenSecret)
	}
	if cfg.MaxRequestBytes != 1<<20 {
		t.Fatalf("max request bytes: %d", cfg.MaxRequestBytes)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTKEEPER_HTTP_ADDR", ":9999")
	t.Setenv("LISTKEEPER_DB_DSN", "file::memory:")
	t.Setenv("LISTKEEPER_TOKEN_SECRET", "secret")
	t.Setenv("LISTKEEPER_MAX_REQUEST_BYTES", "2048")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPAddr != ":9999" || cfg.DatabaseDSN != "file::memory:" || cfg.TokenSecret != "secret" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.MaxRequestBytes != 2048 {
		t.Fatalf("max request bytes: %d", cfg.MaxRequestBytes)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "listkeeper.yaml")
	data := []byte("http_addr: \":7070\"\ntodos_table: my_todos\nnotes_table: my_notes\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LISTKEEPER_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPAddr != ":7070" || cfg.TodosTable != "my_todos" || cfg.NotesTable != "my_notes" {
		t.Fatalf("file not applied: %+v", cfg)
	}

	// env wins over the file
	t.Setenv("LISTKEEPER_HTTP_ADDR", ":6060")
	cfg, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPAddr != ":6060" {
		t.Fatalf("env should override file: %+v", cfg)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTKEEPER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":::not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LISTKEEPER_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
