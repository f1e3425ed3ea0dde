// Package potatolog keeps recent log entries in memory, so that they can be
// shown inside the TUI.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// DefaultCapacity is the number of entries kept by GlobalMemoryLogReaderWriter.
const DefaultCapacity = 1000

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	capacity: DefaultCapacity,
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It keeps only the most recent entries, up to its capacity.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// NewMemoryLogReaderWriter returns a MemoryLogReaderWriter keeping at most
// capacity entries.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{capacity: capacity}
}

// Write appends a log entry to the log.
// It expects a single JSON object, as written by zerolog.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		w.log = append([]LogEntry{}, w.log[len(w.log)-w.capacity:]...)
	}
	return len(p), nil
}

// Get returns the log, oldest entry first.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]LogEntry{}, w.log...)
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
