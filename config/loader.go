package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/xuehaonan27/sqlx/config/diag"
)

const (
	// FileName is the conventional name of the configuration document.
	FileName = "sqlx.toml"
	// EnvProjectRoot names the environment variable pointing at the
	// project root, used by FromProjectRoot.
	EnvProjectRoot = "SQLX_PROJECT_ROOT"
)

// PathFunc produces the candidate path for the config file, or fails before
// any I/O occurs (for example because a required environment variable is
// absent). The loader invokes it at most once per initialization attempt and
// never on a cache hit. A PathFunc must not call back into this package.
type PathFunc func() (string, error)

// cell is the write-once cache holding the process-wide Config. Failed
// initialization attempts leave it empty so later calls can retry, unlike
// sync.Once which records the first outcome permanently.
type cell struct {
	mu  sync.Mutex
	cfg atomic.Pointer[Config]
}

// getOrInit returns the published Config, or runs init and publishes its
// result. The mutex serializes the check-then-populate sequence; at most one
// init runs at a time and exactly one successful result is committed.
func (c *cell) getOrInit(init func() (*Config, error)) (*Config, error) {
	if cfg := c.cfg.Load(); cfg != nil {
		return cfg, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if cfg := c.cfg.Load(); cfg != nil {
		return cfg, nil
	}
	cfg, err := init()
	if err != nil {
		return nil, err
	}
	c.cfg.Store(cfg)
	return cfg, nil
}

var cache = &cell{}

// Load returns the cached Config if one has been published, or resolves a
// candidate path via resolve, reads and parses the file, publishes the
// result, and returns it.
//
// The first caller to succeed wins: once the cache is populated, later calls
// return the same *Config without invoking their strategy or touching the
// filesystem. Errors are returned as *Error and are never cached, so a
// subsequent call with a corrected strategy can still succeed.
func Load(resolve PathFunc) (*Config, error) {
	return cache.getOrInit(func() (*Config, error) {
		path, err := resolve()
		if err != nil {
			var ce *Error
			if errors.As(err, &ce) {
				return nil, ce
			}
			return nil, &Error{Kind: KindEnv, Err: err}
		}
		return readFromPath(path)
	})
}

// LoadFromPath is Load with a strategy that unconditionally returns path.
func LoadFromPath(path string) (*Config, error) {
	return Load(func() (string, error) { return path, nil })
}

// LoadOrDefault is the convenience form for callers that treat a missing
// file as acceptable. On ErrNotFound it caches and returns Default().
//
// Every other failure is fatal for this entry point and panics: proceeding
// with a fabricated configuration is unsafe for operations like migrations,
// where wrong settings are worse than stopping. Callers that need to handle
// those failures use Load, which never terminates.
func LoadOrDefault(resolve PathFunc) *Config {
	cfg, err := Load(resolve)
	if err == nil {
		return cfg
	}

	var ce *Error
	if errors.As(err, &ce) {
		if path, ok := ce.NotFoundPath(); ok {
			notef("file %q not found, using defaults", path)
			cfg, _ := cache.getOrInit(func() (*Config, error) {
				return Default(), nil
			})
			return cfg
		}
	}

	alertf("fatal: %v", err)
	panic(fmt.Sprintf("config: cannot continue without a readable config: %v", err))
}

// FromProjectRoot returns a strategy resolving sqlx.toml inside the
// directory named by SQLX_PROJECT_ROOT. An unset or empty variable fails
// with ErrEnv before any filesystem access.
func FromProjectRoot() PathFunc {
	return func() (string, error) {
		root := os.Getenv(EnvProjectRoot)
		if root == "" {
			return "", &Error{
				Kind: KindEnv,
				Err:  fmt.Errorf("environment variable %s must be set and non-empty", EnvProjectRoot),
			}
		}
		return filepath.Join(root, FileName), nil
	}
}

// FromWorkingDir returns a strategy resolving sqlx.toml in the process's
// current working directory.
func FromWorkingDir() PathFunc {
	return func() (string, error) { return FileName, nil }
}

var (
	diagMu   sync.RWMutex
	diagSink diag.Sink = diag.Discard()
)

// SetDiagnostics installs a sink receiving notes about attempted paths and
// raw file contents. Diagnostics are not load-bearing; the default sink
// discards everything. Passing nil restores the discarding sink.
func SetDiagnostics(s diag.Sink) {
	diagMu.Lock()
	defer diagMu.Unlock()
	if s == nil {
		s = diag.Discard()
	}
	diagSink = s
}

func sink() diag.Sink {
	diagMu.RLock()
	defer diagMu.RUnlock()
	return diagSink
}

func notef(format string, args ...any) {
	if w := sink().Out(); w != nil {
		fmt.Fprintf(w, "config: "+format+"\n", args...)
	}
}

func alertf(format string, args ...any) {
	if w := sink().ErrOut(); w != nil {
		fmt.Fprintf(w, "config: "+format+"\n", args...)
	}
}
