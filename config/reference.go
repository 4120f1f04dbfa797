package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed reference.toml
var reference string

// Reference returns the fully commented reference sqlx.toml document.
func Reference() string { return reference }

// WriteReference writes the reference document to path, creating parent
// directories as needed. The write goes through a temp file and rename so a
// crash cannot leave a truncated config behind.
func WriteReference(path string) (retErr error) {
	dir := filepath.Dir(path)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	tmp, err := os.CreateTemp(dir, "sqlx-toml-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(reference); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}
	return nil
}
