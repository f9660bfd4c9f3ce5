// Package broadcast provides the parallel peer fan-out used by the
// coordinator for request and release messages. Unlike a quorum fan-out it
// always waits for every peer and classifies each outcome explicitly
// (acked, unreachable, errored) instead of swallowing failures.
package broadcast
