// Package history provides a bounded in-memory log of clock events. The
// coordinator composes it with the logical clock as an audit trail; it is
// the collaborator behind the Recorder interface in package clock.
package history
