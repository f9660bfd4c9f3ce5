package queue

import (
	"fmt"
	"sort"
	"sync"
)

// Record is one pending resource request: who asked for what, and at which
// logical time. Records are immutable values.
type Record struct {
	Timestamp  int64
	ProcessID  string
	ResourceID string
}

// String returns a human-readable descriptor, used in status reports.
func (r Record) String() string {
	return fmt.Sprintf("%s@%d:%s", r.ProcessID, r.Timestamp, r.ResourceID)
}

// Key identifies a record within a queue. A process has at most one pending
// request per resource; re-requesting replaces the previous record.
type Key struct {
	ProcessID  string
	ResourceID string
}

// Less is the total order over request records: timestamp ascending,
// ties broken by process ID ascending. It is strict over records that
// differ in (Timestamp, ProcessID), which is what admission relies on:
// no two processes can own the same (timestamp, id) pair.
func Less(a, b Record) bool {
	if a.Timestamp != b.Timestamp {
		return a.Timestamp < b.Timestamp
	}
	return a.ProcessID < b.ProcessID
}

// order extends Less with a final resource-ID tiebreak so queue traversal
// is deterministic even if one process somehow holds records for two
// resources at the same timestamp. The protocol order itself is Less.
func order(a, b Record) bool {
	if a.Timestamp != b.Timestamp {
		return a.Timestamp < b.Timestamp
	}
	if a.ProcessID != b.ProcessID {
		return a.ProcessID < b.ProcessID
	}
	return a.ResourceID < b.ResourceID
}

// Queue is the per-process set of pending requests, one per
// (process, resource) pair, ordered by Less for head lookup.
// Safe for concurrent use.
//
// The queue keeps a release watermark per pair: the highest release
// timestamp processed for it. Messages can arrive on different connections
// in any order, so a request (or a piggybacked copy of one) may land after
// the release that retires it; the watermark keeps such echoes from
// resurrecting a dead record and wedging admission forever.
type Queue struct {
	mu       sync.RWMutex
	records  map[Key]Record
	released map[Key]int64
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{
		records:  make(map[Key]Record),
		released: make(map[Key]int64),
	}
}

// Insert adds a record, replacing any existing record for the same
// (process, resource) pair. A record at or below the pair's release
// watermark is a stale echo of an already-released request and is dropped.
// Reports whether the record was stored.
func (q *Queue) Insert(r Record) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	k := Key{ProcessID: r.ProcessID, ResourceID: r.ResourceID}
	if r.Timestamp <= q.released[k] {
		return false
	}
	q.records[k] = r
	return true
}

// Release prunes the pair's record unless it is newer than ts, and raises
// the pair's release watermark to ts. A release timestamp is always ticked
// after the request it retires, so a newer stored record belongs to the
// owner's next cycle and survives.
func (q *Queue) Release(processID, resourceID string, ts int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	k := Key{ProcessID: processID, ResourceID: resourceID}
	if r, ok := q.records[k]; ok && r.Timestamp <= ts {
		delete(q.records, k)
	}
	if ts > q.released[k] {
		q.released[k] = ts
	}
}

// Remove deletes the record for the given pair. No-op if absent.
func (q *Queue) Remove(processID, resourceID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.records, Key{ProcessID: processID, ResourceID: resourceID})
}

// Get returns the record for the given pair, or false if absent.
func (q *Queue) Get(processID, resourceID string) (Record, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	r, ok := q.records[Key{ProcessID: processID, ResourceID: resourceID}]
	return r, ok
}

// Contains reports whether a record exists for the given pair.
func (q *Queue) Contains(processID, resourceID string) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	_, ok := q.records[Key{ProcessID: processID, ResourceID: resourceID}]
	return ok
}

// Head returns the minimum record under the total order, or false when the
// queue is empty.
func (q *Queue) Head() (Record, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	var head Record
	found := false
	for _, r := range q.records {
		if !found || order(r, head) {
			head = r
			found = true
		}
	}
	return head, found
}

// HeadForResource returns the minimum record among requests for the given
// resource, or false if none are pending. Admission for a resource only
// competes with requests for that same resource.
func (q *Queue) HeadForResource(resourceID string) (Record, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	var head Record
	found := false
	for _, r := range q.records {
		if r.ResourceID != resourceID {
			continue
		}
		if !found || order(r, head) {
			head = r
			found = true
		}
	}
	return head, found
}

// Len returns the number of pending records.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.records)
}

// Snapshot returns all records sorted by the total order.
func (q *Queue) Snapshot() []Record {
	q.mu.RLock()
	records := make([]Record, 0, len(q.records))
	for _, r := range q.records {
		records = append(records, r)
	}
	q.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return order(records[i], records[j])
	})
	return records
}

// Descriptors returns sorted human-readable descriptors for all pending
// records, in queue order.
func (q *Queue) Descriptors() []string {
	records := q.Snapshot()
	descriptors := make([]string, 0, len(records))
	for _, r := range records {
		descriptors = append(descriptors, r.String())
	}
	return descriptors
}
