// Package queue provides the pending-request queue that every process keeps
// for the requests it knows about, its own and its peers'. Requests are
// ranked by a strict total order (Lamport timestamp, then process ID) so all
// processes agree on which request is at the head.
package queue
