package config

import (
	"fmt"

	modellib "github.com/ygrebnov/model"
)

// Common holds settings shared by multiple sqlx components.
type Common struct {
	// DatabaseURLVar names the environment variable consulted for the
	// database connection string.
	DatabaseURLVar string `toml:"database_url_var" default:"DATABASE_URL"`
}

// Macros holds settings for compile-time query checking and code generation.
// Override maps are consumed verbatim by the macro-expansion tooling.
type Macros struct {
	// TypeOverrides maps SQL type names to the Go types generated for them.
	TypeOverrides map[string]string `toml:"type_overrides"`
	// ColumnOverrides maps fully qualified column names ("table.column")
	// to the Go types generated for them. Takes precedence over
	// TypeOverrides.
	ColumnOverrides map[string]string `toml:"column_overrides"`
}

// Migrate holds settings for migrations executed through the sqlx CLI.
type Migrate struct {
	// MigrationsDir is the directory containing migration files, relative
	// to the project root.
	MigrationsDir string `toml:"migrations_dir" default:"migrations"`
	// TableName is the table sqlx uses to record applied migrations.
	TableName string `toml:"table_name" default:"_sqlx_migrations"`
	// IgnoredChars lists characters stripped from migration files before
	// checksumming, e.g. ["\r"] to ignore line-ending differences.
	IgnoredChars []string `toml:"ignored_chars"`
	// CreateSchemas lists schemas created before migrations run.
	CreateSchemas []string `toml:"create_schemas"`
	// DefaultMigrationType selects the kind of migration files created by
	// default: "simple" or "reversible".
	DefaultMigrationType string `toml:"default_migration_type" default:"simple"`
	// DefaultVersioning selects how new migration files are versioned:
	// "timestamp" or "sequential".
	DefaultVersioning string `toml:"default_versioning" default:"timestamp"`
}

// Config is the parsed structure of an sqlx.toml file.
//
// A Config is created at most once per process, is never mutated after it
// is published, and may be read concurrently without synchronization.
type Config struct {
	// Common holds settings shared by multiple components.
	Common Common `toml:"common"`
	// Macros holds settings for the query-checking macro tooling.
	Macros Macros `toml:"macros"`
	// Migrate holds settings for migration tooling.
	Migrate Migrate `toml:"migrate"`
}

// Default returns a Config with every field set to its documented default.
// A missing config file is equivalent to this value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(&cfg.Common)
	applyDefaults(&cfg.Macros)
	applyDefaults(&cfg.Migrate)
	return cfg
}

// applyDefaults fills zero-valued fields of a section from its `default`
// struct tags. Tag mistakes are programmer errors, hence the panics.
func applyDefaults[T any](section *T) {
	m, err := modellib.New(section)
	if err != nil {
		panic(fmt.Sprintf("config: build model for %T: %v", section, err))
	}
	if err := m.SetDefaults(); err != nil {
		panic(fmt.Sprintf("config: apply defaults for %T: %v", section, err))
	}
}
