//go:build !notoml

package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReferenceMatchesDefaults(t *testing.T) {
	resetCache()

	// Every uncommented value in the reference document is a default, so
	// loading it must be indistinguishable from no file at all.
	path := filepath.Join(t.TempDir(), "sqlx.toml")
	if err := WriteReference(path); err != nil {
		t.Fatalf("WriteReference: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load reference: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("reference drifted from defaults:\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestWriteReferenceCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sqlx.toml")
	if err := WriteReference(path); err != nil {
		t.Fatalf("WriteReference: %v", err)
	}
	if !strings.Contains(Reference(), "[migrate]") {
		t.Fatalf("reference document lost its migrate section")
	}
}
