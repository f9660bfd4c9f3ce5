package broadcast

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dmutex/internal/config"
	"dmutex/internal/queue"
)

const (
	// DefaultPerPeerTimeout is the default timeout for each peer RPC.
	DefaultPerPeerTimeout = 2 * time.Second
)

// ErrUnreachable marks transport-level failures (connect errors, timeouts).
// Transports wrap their connectivity errors with it so results can be
// classified; every other error counts as a peer-side failure.
var ErrUnreachable = errors.New("peer unreachable")

// Status classifies the outcome of one peer call.
type Status int

const (
	// Acked means the peer processed the message and replied.
	Acked Status = iota
	// Unreachable means the peer could not be reached in time.
	Unreachable
	// Failed means the peer was reached but returned an error.
	Failed
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case Acked:
		return "ACKED"
	case Unreachable:
		return "UNREACHABLE"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Reply is a peer's protocol-level acknowledgment. Pending, when non-nil,
// piggybacks the replier's own pending request for the same resource so the
// requester sees every competing request it must order against, even when
// that request is still in flight on another connection.
type Reply struct {
	Timestamp int64
	ProcessID string
	Granted   bool
	Message   string
	Pending   *queue.Record
}

// Result is the outcome of one peer call within a broadcast.
type Result struct {
	Peer   config.Peer
	Status Status
	Reply  Reply
	Err    error
}

// CallFunc performs the protocol call against a single peer.
type CallFunc func(ctx context.Context, peer config.Peer) (Reply, error)

// Do fans the call out to every peer in parallel and returns all results.
// observe, if non-nil, is invoked once per result as it arrives, before Do
// returns; callers use it to advance clocks and re-check admission per
// reply rather than once at the end. A failing peer never aborts the
// remaining fan-out.
func Do(ctx context.Context, peers []config.Peer, timeout time.Duration, call CallFunc, observe func(Result)) []Result {
	if len(peers) == 0 {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultPerPeerTimeout
	}

	peerCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(peers))
		wg      sync.WaitGroup
	)

	for _, peer := range peers {
		wg.Add(1)
		go func(p config.Peer) {
			defer wg.Done()

			reply, err := call(peerCtx, p)
			res := classify(p, reply, err)

			mu.Lock()
			results = append(results, res)
			if observe != nil {
				observe(res)
			}
			mu.Unlock()
		}(peer)
	}

	wg.Wait()
	return results
}

// AllAcked reports whether every result in the set is an acknowledgment.
func AllAcked(results []Result) bool {
	for _, r := range results {
		if r.Status != Acked {
			return false
		}
	}
	return true
}

// Errors summarizes the non-acked results, or nil if all peers acked.
func Errors(results []Result) error {
	var parts []string
	for _, r := range results {
		if r.Status == Acked {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s (%v)", r.Peer.ID, r.Status, r.Err))
	}
	if len(parts) == 0 {
		return nil
	}
	return fmt.Errorf("broadcast incomplete: %v", parts)
}

func classify(peer config.Peer, reply Reply, err error) Result {
	if err == nil {
		return Result{Peer: peer, Status: Acked, Reply: reply}
	}
	if errors.Is(err, ErrUnreachable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return Result{Peer: peer, Status: Unreachable, Err: err}
	}
	return Result{Peer: peer, Status: Failed, Err: err}
}
