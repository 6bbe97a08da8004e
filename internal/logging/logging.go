// Package logging provides the audit log every destructive or skipped
// operation is recorded in. The format is one tab-separated line per event
// so a run can be reconstructed from the log alone.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// auditHandler formats records as:
//
//	<timestamp>\t<level>\t<message>\t<key=value ...>
type auditHandler struct {
	w     io.Writer
	attrs []slog.Attr
}

func (h *auditHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *auditHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time.UTC().Format("2006-01-02T15:04:05Z")

	if _, err := fmt.Fprintf(h.w, "%s\t%s\t%s", ts, r.Level.String(), r.Message); err != nil {
		return err
	}

	for _, a := range h.attrs {
		fmt.Fprintf(h.w, "\t%s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, "\t%s=%v", a.Key, a.Value)
		return true
	})

	_, err := fmt.Fprintln(h.w)
	return err
}

func (h *auditHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &auditHandler{
		w:     h.w,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *auditHandler) WithGroup(string) slog.Handler { return h }

// New opens (or creates) the audit log at logPath and returns a logger
// writing to it. When verbose is set the log is mirrored to stderr. The
// returned file must be closed by the caller once the run finishes.
func New(logPath string, verbose bool) (*slog.Logger, *os.File, error) {
	if dir := filepath.Dir(logPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	var w io.Writer = f
	if verbose {
		w = io.MultiWriter(f, os.Stderr)
	}
	return slog.New(&auditHandler{w: w}), f, nil
}

// NewWriter returns a logger targeting an arbitrary writer. Used in tests to
// assert on emitted entries.
func NewWriter(w io.Writer) *slog.Logger {
	return slog.New(&auditHandler{w: w})
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(&auditHandler{w: io.Discard})
}
