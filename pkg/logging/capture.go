// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package logging

import (
	"context"
	"log/slog"
	"sync"
)

// Capture records log entries in memory for test assertions.
//
//	logger, capture := logging.NewCapture(logging.LevelDebug)
//	store := dataset.NewStore(logger)
//	...
//	require.True(t, capture.Contains("loaded dataset"))
type Capture struct {
	mu      sync.Mutex
	entries []CapturedEntry
}

// CapturedEntry is a single recorded log entry.
type CapturedEntry struct {
	Level   Level
	Message string
	Attrs   map[string]any
}

// NewCapture returns a logger whose entries are recorded in the returned
// Capture instead of being written to any sink.
func NewCapture(level Level) (*Logger, *Capture) {
	capture := &Capture{}
	logger := New(Config{Level: level, Handler: &captureHandler{capture: capture, min: level.toSlogLevel()}})
	return logger, capture
}

// Entries returns a copy of all recorded entries.
func (c *Capture) Entries() []CapturedEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Contains reports whether any recorded message equals msg.
func (c *Capture) Contains(msg string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}

// captureHandler implements slog.Handler on top of a Capture.
type captureHandler struct {
	capture *Capture
	min     slog.Level
	attrs   []slog.Attr
}

func (h *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	var level Level
	switch {
	case r.Level >= slog.LevelError:
		level = LevelError
	case r.Level >= slog.LevelWarn:
		level = LevelWarn
	case r.Level >= slog.LevelInfo:
		level = LevelInfo
	default:
		level = LevelDebug
	}

	h.capture.mu.Lock()
	h.capture.entries = append(h.capture.entries, CapturedEntry{
		Level:   level,
		Message: r.Message,
		Attrs:   attrs,
	})
	h.capture.mu.Unlock()
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &captureHandler{capture: h.capture, min: h.min, attrs: merged}
}

func (h *captureHandler) WithGroup(string) slog.Handler {
	return h
}
