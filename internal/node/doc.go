// Package node is the gRPC surface of one process: the ExclusionManager
// service facade, the peer client manager, and the transport adapter that
// carries the coordinator's protocol messages over the wire.
package node
