//go:build !notoml

package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// readFromPath reads and deserializes the document at path. Decoding happens
// over a Default()-initialized value, so fields and sections absent from the
// document keep their defaults.
func readFromPath(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, classifyIO(path, err)
	}

	notef("read %s:\n%s", path, raw)

	cfg := Default()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		// toml.DecodeError renders with line/column context.
		return nil, &Error{Kind: KindParse, Path: path, Err: err}
	}
	return cfg, nil
}
