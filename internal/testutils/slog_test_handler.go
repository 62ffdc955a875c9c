package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry represents a simplified log record for testing
type LogEntry map[string]interface{}

// TestSlogHandler is a memory-backed slog.Handler for testing. Loggers
// derived with With share the parent's entries.
type TestSlogHandler struct {
	store *entryStore
	attrs []slog.Attr
	level slog.Level
}

type entryStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewTestSlogHandler creates a handler that records every level.
func NewTestSlogHandler() *TestSlogHandler {
	return &TestSlogHandler{store: &entryStore{}, level: slog.LevelDebug}
}

// NewTestLogger returns a logger writing to a new TestSlogHandler.
func NewTestLogger() (*slog.Logger, *TestSlogHandler) {
	h := NewTestSlogHandler()
	return slog.New(h), h
}

// Enabled satisfies slog.Handler interface
func (h *TestSlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle satisfies slog.Handler interface
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := make(LogEntry, len(h.attrs)+r.NumAttrs()+2)
	entry["level"] = r.Level.String()
	entry["message"] = r.Message

	for _, a := range h.attrs {
		entry[a.Key] = a.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Any()
		return true
	})

	h.store.mu.Lock()
	h.store.entries = append(h.store.entries, entry)
	h.store.mu.Unlock()
	return nil
}

// WithAttrs satisfies slog.Handler interface
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &TestSlogHandler{store: h.store, attrs: merged, level: h.level}
}

// WithGroup satisfies slog.Handler interface. Groups are flattened.
func (h *TestSlogHandler) WithGroup(name string) slog.Handler {
	return h
}

// Entries returns all captured log entries
func (h *TestSlogHandler) Entries() []LogEntry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	result := make([]LogEntry, len(h.store.entries))
	copy(result, h.store.entries)
	return result
}

// EntriesWithMessage returns the captured entries whose message is msg.
func (h *TestSlogHandler) EntriesWithMessage(msg string) []LogEntry {
	var out []LogEntry
	for _, e := range h.Entries() {
		if e["message"] == msg {
			out = append(out, e)
		}
	}
	return out
}

// Clear resets the captured log entries
func (h *TestSlogHandler) Clear() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	h.store.entries = nil
}
