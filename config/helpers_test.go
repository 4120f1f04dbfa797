package config

import (
	"os"
	"path/filepath"
	"testing"
)

// resetCache empties the singleton between tests. Production code never
// clears the cell; tests must, because every test exercises first-load
// behavior in the same process.
func resetCache() {
	cache = &cell{}
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}
