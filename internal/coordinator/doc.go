// Package coordinator implements the mutual-exclusion engine of one
// process: the Lamport-clocked admission state machine over the pending
// request queue, and the request/reply/release protocol that keeps peer
// views consistent. A process enters its critical section only when its own
// request heads the queue and every peer has acknowledged it.
package coordinator
