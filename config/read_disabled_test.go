//go:build notoml

package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadParseDisabledWhenFileExists(t *testing.T) {
	resetCache()
	td := t.TempDir()
	path := writeFile(t, td, "sqlx.toml", "[common]\n")

	_, err := LoadFromPath(path)
	if !errors.Is(err, ErrParseDisabled) {
		t.Fatalf("expected ErrParseDisabled, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not name the file", err)
	}
}

func TestLoadNotFoundWhenParsingDisabled(t *testing.T) {
	resetCache()
	missing := filepath.Join(t.TempDir(), "sqlx.toml")

	// A genuinely absent file reports NotFound regardless of parsing
	// support; absence is never conflated with "would have needed to parse".
	_, err := LoadFromPath(missing)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if errors.Is(err, ErrParseDisabled) {
		t.Fatalf("absent file must not classify as parse disabled")
	}
}

func TestLoadOrDefaultStillSubstitutesWhenParsingDisabled(t *testing.T) {
	resetCache()
	missing := filepath.Join(t.TempDir(), "sqlx.toml")

	cfg := LoadOrDefault(func() (string, error) { return missing, nil })
	if cfg.Migrate.TableName != "_sqlx_migrations" {
		t.Fatalf("expected defaults, got %+v", cfg.Migrate)
	}
}

func TestLoadOrDefaultPanicsOnParseDisabled(t *testing.T) {
	resetCache()
	td := t.TempDir()
	path := writeFile(t, td, "sqlx.toml", "[common]\n")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic when a config file exists but parsing is disabled")
		}
	}()
	LoadOrDefault(func() (string, error) { return path, nil })
}
