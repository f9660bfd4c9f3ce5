package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"dmutex/internal/broadcast"
	"dmutex/internal/clock"
	"dmutex/internal/config"
	"dmutex/internal/history"
	"dmutex/internal/queue"
)

var (
	// ErrNotIdle is returned when Acquire is called while a request is
	// already in flight or a resource is held. Covers reentrant acquires.
	ErrNotIdle = errors.New("coordinator not idle")
	// ErrNotHeld is returned when Release is called for a resource that is
	// not currently held.
	ErrNotHeld = errors.New("resource not held")
	// ErrPeerUnavailable is returned when the request broadcast could not
	// reach every peer. The acquire is rolled back; the caller may retry.
	ErrPeerUnavailable = errors.New("peer unavailable during request broadcast")
)

// PeerTransport delivers protocol messages to a single peer. Implemented
// over gRPC by internal/node and by in-memory fakes in tests.
type PeerTransport interface {
	RequestEntry(ctx context.Context, peer config.Peer, rec queue.Record) (broadcast.Reply, error)
	ReleaseEntry(ctx context.Context, peer config.Peer, rec queue.Record) (broadcast.Reply, error)
}

// Options tunes a coordinator. The zero value uses defaults.
type Options struct {
	// PerPeerTimeout bounds each peer RPC during a broadcast.
	PerPeerTimeout time.Duration
	// HistoryCapacity bounds the clock audit log.
	HistoryCapacity int
}

// Coordinator owns the clock and pending queue of one process and runs the
// admission state machine. All state mutation is serialized through one
// mutex; the blocked Acquire call is woken by a condition variable on every
// queue or reply-set change, never by polling.
type Coordinator struct {
	processID string
	peers     []config.Peer
	transport PeerTransport
	timeout   time.Duration

	clock   *clock.Lamport
	pending *queue.Queue
	history *history.Log

	mu      sync.Mutex
	cond    *sync.Cond
	state   State
	active  string       // resource of the current cycle, "" when idle
	own     queue.Record // own record for the current cycle
	replies map[string]bool
}

// New creates a coordinator for one process. peers is the fixed membership
// excluding the process itself; transport delivers protocol messages to
// them. Dependencies are injected, never looked up through globals.
func New(processID string, peers []config.Peer, transport PeerTransport, opts Options) *Coordinator {
	if opts.PerPeerTimeout <= 0 {
		opts.PerPeerTimeout = broadcast.DefaultPerPeerTimeout
	}

	hist := history.NewLog(processID, opts.HistoryCapacity)
	c := &Coordinator{
		processID: processID,
		peers:     peers,
		transport: transport,
		timeout:   opts.PerPeerTimeout,
		clock:     clock.New(hist),
		pending:   queue.New(),
		history:   hist,
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// ProcessID returns the owning process's identifier.
func (c *Coordinator) ProcessID() string {
	return c.processID
}

// History returns the clock audit log.
func (c *Coordinator) History() *history.Log {
	return c.history
}

// Grant is the handle returned by a successful Acquire. The critical
// section lasts until Release is called.
type Grant struct {
	c   *Coordinator
	rec queue.Record
}

// Record returns the request record the grant was admitted under.
func (g *Grant) Record() queue.Record {
	return g.rec
}

// Acquire requests exclusive access to the resource and blocks until every
// peer has acknowledged the request and the own record is at the head of
// the pending queue for that resource. On success the process is in its
// critical section until the returned grant is released.
//
// If any peer is unreachable or rejects the request, Acquire fails fast
// with ErrPeerUnavailable and rolls the request back at the peers that did
// accept it. If ctx is cancelled while waiting, the request is likewise
// withdrawn before returning.
func (c *Coordinator) Acquire(ctx context.Context, resourceID string) (*Grant, error) {
	if resourceID == "" {
		return nil, errors.New("resource ID cannot be empty")
	}

	c.mu.Lock()
	if c.state != Idle {
		held := c.active
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s cycle for %q in progress", ErrNotIdle, c.state, held)
	}

	ts := c.clock.Tick("request critical section for " + resourceID)
	rec := queue.Record{Timestamp: ts, ProcessID: c.processID, ResourceID: resourceID}
	c.pending.Insert(rec)
	c.own = rec
	c.active = resourceID
	c.replies = make(map[string]bool, len(c.peers))
	c.state = Requesting
	c.mu.Unlock()

	log.Printf("[%s] Requesting %q at ts=%d (%d peers)", c.processID, resourceID, ts, len(c.peers))

	c.setState(WaitingForAdmission)
	results := broadcast.Do(ctx, c.peers, c.timeout, func(ctx context.Context, p config.Peer) (broadcast.Reply, error) {
		return c.transport.RequestEntry(ctx, p, rec)
	}, c.requestObserver(rec))

	if !broadcast.AllAcked(results) {
		err := broadcast.Errors(results)
		log.Printf("[%s] Request for %q failed, rolling back: %v", c.processID, resourceID, err)
		c.withdraw(rec, "request broadcast failed")
		return nil, fmt.Errorf("%w: %v", ErrPeerUnavailable, err)
	}

	// Wake the waiter if the context dies while it is blocked.
	stop := context.AfterFunc(ctx, func() {
		c.cond.Broadcast()
	})
	defer stop()

	c.mu.Lock()
	for !c.admittedLocked(rec) {
		if err := ctx.Err(); err != nil {
			c.mu.Unlock()
			log.Printf("[%s] Acquire for %q cancelled, withdrawing request", c.processID, resourceID)
			c.withdraw(rec, "acquire cancelled")
			return nil, err
		}
		c.cond.Wait()
	}
	c.state = InCriticalSection
	c.mu.Unlock()

	log.Printf("[%s] Entered critical section for %q", c.processID, resourceID)
	return &Grant{c: c, rec: rec}, nil
}

// Release exits the critical section: the own record is pruned locally, a
// release is broadcast to every peer, and the coordinator returns to idle.
// No peer ack gates the transition: the coordinator is idle again as soon
// as its own record is pruned, and the release fan-out drains while new
// acquires may already be running. Transport failures here are logged, not
// returned.
func (g *Grant) Release(ctx context.Context) error {
	c := g.c

	c.mu.Lock()
	if c.state != InCriticalSection || c.active != g.rec.ResourceID {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotHeld, g.rec.ResourceID)
	}
	c.state = Releasing
	relTs := c.clock.Tick("release critical section for " + g.rec.ResourceID)
	c.pending.Release(c.processID, g.rec.ResourceID, relTs)
	c.replies = nil
	c.active = ""
	c.state = Idle
	c.cond.Broadcast()
	c.mu.Unlock()

	rel := queue.Record{Timestamp: relTs, ProcessID: c.processID, ResourceID: g.rec.ResourceID}
	results := broadcast.Do(ctx, c.peers, c.timeout, func(ctx context.Context, p config.Peer) (broadcast.Reply, error) {
		return c.transport.ReleaseEntry(ctx, p, rel)
	}, c.releaseObserver())

	if err := broadcast.Errors(results); err != nil {
		log.Printf("[%s] Release broadcast for %q incomplete: %v", c.processID, g.rec.ResourceID, err)
	} else {
		log.Printf("[%s] Released %q at ts=%d", c.processID, g.rec.ResourceID, relTs)
	}
	return nil
}

// HandleRequest processes an inbound request from a peer as one atomic
// step: advance the clock past the sender's timestamp, queue the request,
// and acknowledge with a fresh local timestamp. Acknowledgments are never
// deferred; admission ordering is enforced by the queue-head check alone.
//
// The reply piggybacks the own pending request for the same resource, if
// any. The reply travels on a different connection than the own request
// broadcast, so without it a tie-losing requester could count this ack
// while the smaller-ordered own request is still in flight to it, see
// itself as queue head, and enter out of turn.
func (c *Coordinator) HandleRequest(rec queue.Record) (broadcast.Reply, error) {
	if err := validateRecord(rec); err != nil {
		return broadcast.Reply{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock.Update(rec.Timestamp, fmt.Sprintf("request from %s for %s (ts: %d)", rec.ProcessID, rec.ResourceID, rec.Timestamp))
	c.pending.Insert(rec)
	ts := c.clock.Tick("reply to " + rec.ProcessID)
	c.cond.Broadcast()

	reply := broadcast.Reply{
		Timestamp: ts,
		ProcessID: c.processID,
		Granted:   true,
		Message:   fmt.Sprintf("request queued by %s", c.processID),
	}
	if own, ok := c.pending.Get(c.processID, rec.ResourceID); ok {
		reply.Pending = &own
	}
	return reply, nil
}

// HandleRelease processes an inbound release from a peer: advance the
// clock, prune the sender's record, and re-check admission for any waiting
// own request, since the removal can promote it to queue head. The prune
// raises the queue's release watermark, so a copy of the retired request
// that is still in flight cannot re-insert it.
func (c *Coordinator) HandleRelease(rec queue.Record) (broadcast.Reply, error) {
	if err := validateRecord(rec); err != nil {
		return broadcast.Reply{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock.Update(rec.Timestamp, fmt.Sprintf("release from %s for %s (ts: %d)", rec.ProcessID, rec.ResourceID, rec.Timestamp))
	c.pending.Release(rec.ProcessID, rec.ResourceID, rec.Timestamp)
	ts := c.clock.Tick("release ack to " + rec.ProcessID)
	c.cond.Broadcast()

	return broadcast.Reply{
		Timestamp: ts,
		ProcessID: c.processID,
		Granted:   true,
		Message:   "release acknowledged",
	}, nil
}

// Snapshot serves a status query. The query counts as a clock event but
// does not mutate the queue.
func (c *Coordinator) Snapshot(fromID string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.clock.Tick("status query from " + fromID)
	return Snapshot{
		ProcessID:         c.processID,
		State:             c.state,
		InCriticalSection: c.state == InCriticalSection,
		HeldResource:      c.active,
		CurrentTimestamp:  ts,
		PendingRequests:   c.pending.Descriptors(),
	}
}

// admittedLocked is the admission predicate: the own record heads the
// pending queue for its resource and every peer has acknowledged it.
// Caller holds c.mu.
func (c *Coordinator) admittedLocked(rec queue.Record) bool {
	if c.state != WaitingForAdmission || c.own != rec {
		return false
	}
	if len(c.replies) != len(c.peers) {
		return false
	}
	head, ok := c.pending.HeadForResource(rec.ResourceID)
	return ok && head == rec
}

// requestObserver counts acknowledgments for the given own request as they
// arrive, advancing the clock and re-checking admission per reply. Any
// competing request the replier piggybacked is queued before the reply is
// counted, so the admission predicate never runs against a queue missing a
// smaller-ordered competitor.
func (c *Coordinator) requestObserver(rec queue.Record) func(broadcast.Result) {
	return func(res broadcast.Result) {
		if res.Status != broadcast.Acked {
			return
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		c.clock.Update(res.Reply.Timestamp, fmt.Sprintf("reply from %s (ts: %d)", res.Reply.ProcessID, res.Reply.Timestamp))
		if p := res.Reply.Pending; p != nil && p.ProcessID != c.processID && validateRecord(*p) == nil {
			c.pending.Insert(*p)
		}
		if c.own == rec && c.replies != nil {
			c.replies[res.Peer.ID] = true
		}
		c.cond.Broadcast()
	}
}

// releaseObserver drains release acknowledgments into the clock.
func (c *Coordinator) releaseObserver() func(broadcast.Result) {
	return func(res broadcast.Result) {
		if res.Status != broadcast.Acked {
			return
		}
		c.mu.Lock()
		c.clock.Update(res.Reply.Timestamp, fmt.Sprintf("release ack from %s (ts: %d)", res.Reply.ProcessID, res.Reply.Timestamp))
		c.mu.Unlock()
	}
}

// withdraw takes back the own request after a failed or cancelled acquire:
// prune locally, reset to idle, and tell every peer to prune as well. The
// undo broadcast runs on its own context since the caller's may be dead.
func (c *Coordinator) withdraw(rec queue.Record, reason string) {
	c.mu.Lock()
	relTs := c.clock.Tick("withdraw request for " + rec.ResourceID + ": " + reason)
	c.pending.Release(c.processID, rec.ResourceID, relTs)
	c.replies = nil
	c.active = ""
	c.state = Idle
	c.cond.Broadcast()
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	rel := queue.Record{Timestamp: relTs, ProcessID: c.processID, ResourceID: rec.ResourceID}
	results := broadcast.Do(ctx, c.peers, c.timeout, func(ctx context.Context, p config.Peer) (broadcast.Reply, error) {
		return c.transport.ReleaseEntry(ctx, p, rel)
	}, c.releaseObserver())

	if err := broadcast.Errors(results); err != nil {
		log.Printf("[%s] Withdraw broadcast for %q incomplete: %v", c.processID, rec.ResourceID, err)
	}
}

func (c *Coordinator) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// validateRecord rejects malformed protocol messages before any state is
// touched, so a bad message never corrupts the clock or queue.
func validateRecord(rec queue.Record) error {
	if rec.ProcessID == "" {
		return errors.New("process ID cannot be empty")
	}
	if rec.ResourceID == "" {
		return errors.New("resource ID cannot be empty")
	}
	if rec.Timestamp <= 0 {
		return fmt.Errorf("timestamp must be positive, got %d", rec.Timestamp)
	}
	return nil
}
