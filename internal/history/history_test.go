package history

import (
	"strings"
	"testing"

	"dmutex/internal/clock"
)

func TestLog_RecordAndEntries(t *testing.T) {
	l := NewLog("P1", 10)

	l.Record(1, "start")
	l.Record(2, "send to P2")

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp != 1 || entries[0].Event != "start" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].Timestamp != 2 || entries[1].Event != "send to P2" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}

func TestLog_EvictsOldestWhenFull(t *testing.T) {
	l := NewLog("P1", 3)

	for i := int64(1); i <= 5; i++ {
		l.Record(i, "event")
	}

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("Expected capacity 3, got %d entries", len(entries))
	}
	if entries[0].Timestamp != 3 {
		t.Errorf("Expected oldest retained entry ts=3, got %d", entries[0].Timestamp)
	}
	if entries[2].Timestamp != 5 {
		t.Errorf("Expected newest entry ts=5, got %d", entries[2].Timestamp)
	}
}

func TestLog_EntriesReturnsCopy(t *testing.T) {
	l := NewLog("P1", 10)
	l.Record(1, "event")

	entries := l.Entries()
	entries[0].Event = "mutated"

	if l.Entries()[0].Event != "event" {
		t.Error("Mutating the returned slice should not affect the log")
	}
}

func TestLog_AsClockRecorder(t *testing.T) {
	l := NewLog("P1", 10)
	c := clock.New(l)

	c.Tick("request critical section")
	c.Update(5, "reply from P2")

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 recorded clock events, got %d", len(entries))
	}
	if entries[1].Timestamp != 6 {
		t.Errorf("Expected recorded update timestamp 6, got %d", entries[1].Timestamp)
	}
}

func TestLog_String(t *testing.T) {
	l := NewLog("P1", 10)
	l.Record(1, "start")

	s := l.String()
	if !strings.Contains(s, "History for process P1") {
		t.Errorf("Expected header in dump, got %q", s)
	}
	if !strings.Contains(s, "[1] start") {
		t.Errorf("Expected entry line in dump, got %q", s)
	}
}
