package clock

import "sync"

// Recorder receives a notification for every clock event. Implementations
// must be safe for concurrent use. A nil Recorder disables auditing.
type Recorder interface {
	Record(ts int64, event string)
}

// Lamport is a Lamport logical clock: a per-process counter incremented on
// every local event and advanced past any received timestamp.
// All operations are safe for concurrent use.
type Lamport struct {
	mu       sync.Mutex
	time     int64
	recorder Recorder
}

// New creates a Lamport clock starting at zero. The recorder, if non-nil,
// is called on every Tick and Update.
func New(recorder Recorder) *Lamport {
	return &Lamport{recorder: recorder}
}

// Tick increments the clock for a local event and returns the new time.
func (c *Lamport) Tick(event string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time++
	if c.recorder != nil {
		c.recorder.Record(c.time, event)
	}
	return c.time
}

// Update advances the clock past a received timestamp and returns the new
// time. The +1 accounts for the receive itself as an event, so the result
// is always strictly greater than both the previous time and received.
func (c *Lamport) Update(received int64, event string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if received > c.time {
		c.time = received
	}
	c.time++
	if c.recorder != nil {
		c.recorder.Record(c.time, event)
	}
	return c.time
}

// Now returns the current time without advancing the clock.
func (c *Lamport) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}
