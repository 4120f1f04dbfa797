// Package diag provides sink adapters for the config loader's optional
// diagnostics output. It offers ready-to-use implementations that write to
// arbitrary io.Writers, discard output, capture output in memory buffers
// (with an optional thread-safe variant), or forward notes to slog.
package diag

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Sink is the minimal contract for diagnostics output consumed by the config
// loader. Out receives informational notes (attempted paths, raw contents);
// ErrOut receives reports of fatal conditions. Interfaces in Go are
// satisfied implicitly, so types defined elsewhere work with
// config.SetDiagnostics as long as they implement these two methods.
type Sink interface {
	Out() io.Writer
	ErrOut() io.Writer
}

// BasicSink is a simple Sink forwarding writes to the supplied io.Writer
// targets. Use the helpers Writers, Discard, Stderr, and Slog to construct
// values quickly.
type BasicSink struct {
	out    io.Writer
	errOut io.Writer
}

func (s BasicSink) Out() io.Writer    { return s.out }
func (s BasicSink) ErrOut() io.Writer { return s.errOut }

// Writers returns a BasicSink writing notes to out and fatal reports to err.
func Writers(out, err io.Writer) BasicSink {
	return BasicSink{out: out, errOut: err}
}

// Discard returns a BasicSink that drops all diagnostics. This is the config
// loader's default.
func Discard() BasicSink {
	return Writers(io.Discard, io.Discard)
}

// Stderr returns a BasicSink that sends everything to os.Stderr, matching
// the usual expectation for tool diagnostics.
func Stderr() BasicSink {
	return Writers(os.Stderr, os.Stderr)
}

// BufferSink captures diagnostics into bytes.Buffers for later inspection.
// It is NOT safe for concurrent writers; see ThreadSafeBufferSink.
type BufferSink struct {
	OutBuf *bytes.Buffer
	ErrBuf *bytes.Buffer
}

// Buffers creates a BufferSink with fresh buffers.
func Buffers() *BufferSink {
	return &BufferSink{
		OutBuf: &bytes.Buffer{},
		ErrBuf: &bytes.Buffer{},
	}
}

func (b *BufferSink) Out() io.Writer    { return b.OutBuf }
func (b *BufferSink) ErrOut() io.Writer { return b.ErrBuf }

// Strings returns the current contents of both buffers.
func (b *BufferSink) Strings() (out, err string) {
	return b.OutBuf.String(), b.ErrBuf.String()
}

// Reset clears both buffers.
func (b *BufferSink) Reset() {
	b.OutBuf.Reset()
	b.ErrBuf.Reset()
}

// tsBuf is a minimal mutex-protected buffer.
type tsBuf struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (t *tsBuf) Write(p []byte) (int, error) { t.mu.Lock(); defer t.mu.Unlock(); return t.b.Write(p) }
func (t *tsBuf) String() string              { t.mu.Lock(); defer t.mu.Unlock(); return t.b.String() }
func (t *tsBuf) Reset()                      { t.mu.Lock(); defer t.mu.Unlock(); t.b.Reset() }

// ThreadSafeBufferSink captures diagnostics into mutex-protected buffers and
// is safe for concurrent writers, e.g. when several goroutines race the
// first load.
type ThreadSafeBufferSink struct {
	OutBuf *tsBuf
	ErrBuf *tsBuf
}

// ThreadSafeBuffers creates a thread-safe buffer sink.
func ThreadSafeBuffers() *ThreadSafeBufferSink {
	return &ThreadSafeBufferSink{OutBuf: &tsBuf{}, ErrBuf: &tsBuf{}}
}

func (b *ThreadSafeBufferSink) Out() io.Writer    { return b.OutBuf }
func (b *ThreadSafeBufferSink) ErrOut() io.Writer { return b.ErrBuf }

// Strings returns the current contents of both buffers.
func (b *ThreadSafeBufferSink) Strings() (string, string) {
	return b.OutBuf.String(), b.ErrBuf.String()
}

// Reset clears both buffers.
func (b *ThreadSafeBufferSink) Reset() { b.OutBuf.Reset(); b.ErrBuf.Reset() }

// slogWriter adapts a slog.Logger to io.Writer, emitting one record per
// Write with the trailing newline trimmed.
type slogWriter struct {
	l     *slog.Logger
	level slog.Level
}

func (w slogWriter) Write(p []byte) (int, error) {
	n := len(p)
	if n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
	}
	w.l.Log(context.Background(), w.level, string(p))
	return n, nil
}

// Slog returns a Sink forwarding notes to l at level info and fatal reports
// at level err.
func Slog(l *slog.Logger, info, err slog.Level) BasicSink {
	return BasicSink{
		out:    slogWriter{l: l, level: info},
		errOut: slogWriter{l: l, level: err},
	}
}
