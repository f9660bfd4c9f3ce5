// Package clock provides the Lamport logical clock used to order protocol
// events across processes. The clock advances on every local event and on
// every received message, deriving a consistent partial order without
// synchronized physical time. An optional Recorder collaborator captures an
// audit trail of clock events.
package clock
