// Package config locates, reads, parses, and caches the sqlx.toml document
// for the current project.
//
// The parsed Config is a process-wide singleton computed at most once:
//  1. A caller-supplied PathFunc produces the candidate file path (for
//     example from the SQLX_PROJECT_ROOT environment variable, or the
//     current working directory).
//  2. The file is read and classified: a missing file is reported as
//     ErrNotFound, any other read failure as ErrRead.
//  3. The TOML document is decoded over a default-initialized Config, so
//     partial documents are valid and unspecified fields keep their
//     defaults.
//  4. On success the Config is published to a write-once cache and shared
//     by all subsequent callers. Failed attempts are returned to the
//     caller and never cached, so a later call may retry with a corrected
//     path.
//
// Typical usage:
//
//	cfg, err := config.Load(config.FromProjectRoot())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = cfg.Migrate.MigrationsDir
//
// Callers that treat a missing file as acceptable use LoadOrDefault, which
// substitutes Default() exactly on ErrNotFound and treats every other
// failure as fatal.
//
// Builds with the "notoml" tag compile TOML decoding out; a present config
// file then reports ErrParseDisabled, while an absent one still reports
// ErrNotFound.
package config
