// Package testutils holds helpers shared by the package tests.
package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a captured log record flattened into a map. Attributes added
// with Logger.With are included alongside the record's own.
type LogEntry map[string]interface{}

// LogCapture is a memory-backed slog.Handler for asserting on log output.
type LogCapture struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	attrs   []slog.Attr
}

// NewLogCapture returns a capture handler and a logger writing to it.
func NewLogCapture() (*LogCapture, *slog.Logger) {
	h := &LogCapture{
		mu:      &sync.Mutex{},
		entries: &[]LogEntry{},
	}
	return h, slog.New(h)
}

// Enabled satisfies slog.Handler; every level is captured.
func (h *LogCapture) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, a := range h.attrs {
		entry[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.entries = append(*h.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler. Derived handlers share the capture buffer.
func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &LogCapture{mu: h.mu, entries: h.entries, attrs: merged}
}

// WithGroup satisfies slog.Handler. Groups are flattened.
func (h *LogCapture) WithGroup(_ string) slog.Handler {
	return h
}

// Entries returns a copy of everything captured so far.
func (h *LogCapture) Entries() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]LogEntry, len(*h.entries))
	copy(result, *h.entries)
	return result
}

// Find returns the first entry with the given message.
func (h *LogCapture) Find(message string) (LogEntry, bool) {
	for _, e := range h.Entries() {
		if e["message"] == message {
			return e, true
		}
	}
	return nil, false
}
