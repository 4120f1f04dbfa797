package config

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind discriminates the closed set of failure classes reported by this
// package.
type Kind int

const (
	// KindEnv: a required environment value needed to build the candidate
	// path was absent or invalid. No filesystem access was attempted.
	KindEnv Kind = iota + 1
	// KindNotFound: the candidate path does not exist. Expected and
	// non-fatal; callers typically substitute Default().
	KindNotFound
	// KindIO: the candidate path exists but reading it failed for a reason
	// other than non-existence.
	KindIO
	// KindParse: the file was read but could not be deserialized.
	KindParse
	// KindParseDisabled: a config file exists but this build compiled TOML
	// support out (the "notoml" build tag).
	KindParseDisabled
)

// String returns a short name for the kind, for logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindEnv:
		return "env"
	case KindNotFound:
		return "not found"
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindParseDisabled:
		return "parse disabled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors matched through errors.Is. Each corresponds to one Kind;
// callers that only care about a class of failure use these instead of
// inspecting *Error directly.
var (
	ErrEnv           = errors.New("resolve config path")
	ErrNotFound      = errors.New("config file not found")
	ErrRead          = errors.New("read config file")
	ErrParse         = errors.New("parse config file")
	ErrParseDisabled = errors.New("config file parsing disabled in this build")
)

// Error is the failure type returned by the loading operations. It always
// records the candidate path involved (except KindEnv, where the failure
// precedes path construction) and the underlying cause where one exists.
type Error struct {
	Kind Kind
	Path string
	// Err is the type-erased underlying cause: the strategy's error for
	// KindEnv, the raw I/O error for KindIO, or the decoder's error for
	// KindParse. The decoder error renders with line/column context.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEnv:
		return fmt.Sprintf("config: resolve config path: %v", e.Err)
	case KindNotFound:
		return fmt.Sprintf("config: file %q not found", e.Path)
	case KindIO:
		return fmt.Sprintf("config: read file %q: %v", e.Path, e.Err)
	case KindParse:
		return fmt.Sprintf("config: parse file %q: %v", e.Path, e.Err)
	case KindParseDisabled:
		return fmt.Sprintf("config: found file %q but TOML support is disabled in this build (notoml)", e.Path)
	default:
		return fmt.Sprintf("config: unknown failure for %q", e.Path)
	}
}

// Unwrap exposes the underlying cause to errors.Is/errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel corresponding to this error's
// kind, so errors.Is(err, config.ErrNotFound) and friends work.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrEnv:
		return e.Kind == KindEnv
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrRead:
		return e.Kind == KindIO
	case ErrParse:
		return e.Kind == KindParse
	case ErrParseDisabled:
		return e.Kind == KindParseDisabled
	}
	return false
}

// NotFoundPath returns the attempted path when the error means the file was
// not found. Callers that treat absence as non-fatal use this instead of
// switching on Kind.
func (e *Error) NotFoundPath() (string, bool) {
	if e.Kind == KindNotFound {
		return e.Path, true
	}
	return "", false
}

// classifyIO converts a raw filesystem error for path into the taxonomy:
// non-existence becomes KindNotFound, everything else KindIO. Every code
// path that touches the filesystem reports failures through this function,
// so "file absent" is always distinguishable from "file unreadable".
func classifyIO(path string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Kind: KindNotFound, Path: path}
	}
	return &Error{Kind: KindIO, Path: path, Err: err}
}
