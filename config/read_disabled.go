//go:build notoml

package config

import "os"

// readFromPath is the notoml rendition: a present file cannot be parsed and
// reports KindParseDisabled, while an absent one still reports KindNotFound.
// Absence is never conflated with "would have needed to parse".
func readFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, classifyIO(path, err)
	}
	return nil, &Error{Kind: KindParseDisabled, Path: path}
}
