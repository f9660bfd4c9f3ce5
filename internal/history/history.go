package history

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultCapacity bounds the log when no explicit capacity is given.
const DefaultCapacity = 1024

// Entry is one recorded clock event.
type Entry struct {
	Timestamp int64
	Event     string
	At        time.Time
}

// Log is a bounded, append-only event log. It implements clock.Recorder.
// Safe for concurrent use.
type Log struct {
	mu        sync.Mutex
	processID string
	capacity  int
	entries   []Entry
}

// NewLog creates a log for the given process. Capacity <= 0 uses
// DefaultCapacity. Once full, the oldest entries are evicted.
func NewLog(processID string, capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		processID: processID,
		capacity:  capacity,
	}
}

// Record appends an event. Satisfies clock.Recorder.
func (l *Log) Record(ts int64, event string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{Timestamp: ts, Event: event, At: time.Now()})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// String renders the log in the shape used for shutdown dumps.
func (l *Log) String() string {
	entries := l.Entries()

	var b strings.Builder
	fmt.Fprintf(&b, "=== History for process %s ===\n", l.processID)
	for _, e := range entries {
		fmt.Fprintf(&b, "  [%d] %s\n", e.Timestamp, e.Event)
	}
	return b.String()
}
