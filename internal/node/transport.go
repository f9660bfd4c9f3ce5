package node

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dmutex/internal/broadcast"
	"dmutex/internal/config"
	"dmutex/internal/coordinator"
	"dmutex/internal/queue"
)

// Transport carries the coordinator's protocol messages over gRPC. It
// implements coordinator.PeerTransport.
type Transport struct {
	clientMgr *ClientManager
}

// NewTransport creates a transport backed by the given client manager.
func NewTransport(cm *ClientManager) *Transport {
	return &Transport{clientMgr: cm}
}

var _ coordinator.PeerTransport = (*Transport)(nil)

// RequestEntry delivers a request message to one peer and returns its
// acknowledgment.
func (t *Transport) RequestEntry(ctx context.Context, peer config.Peer, rec queue.Record) (broadcast.Reply, error) {
	client, err := t.clientMgr.GetClient(peer.Addr)
	if err != nil {
		return broadcast.Reply{}, fmt.Errorf("%w: %v", broadcast.ErrUnreachable, err)
	}

	resp, err := client.RequestEntry(ctx, recordToRequest(rec))
	if err != nil {
		return broadcast.Reply{}, classifyRPCError(peer.ID, err)
	}
	reply := protoToReply(resp)
	if !reply.Granted {
		return reply, fmt.Errorf("peer %s did not acknowledge request: %s", peer.ID, reply.Message)
	}
	return reply, nil
}

// ReleaseEntry delivers a release message to one peer.
func (t *Transport) ReleaseEntry(ctx context.Context, peer config.Peer, rec queue.Record) (broadcast.Reply, error) {
	client, err := t.clientMgr.GetClient(peer.Addr)
	if err != nil {
		return broadcast.Reply{}, fmt.Errorf("%w: %v", broadcast.ErrUnreachable, err)
	}

	resp, err := client.ReleaseEntry(ctx, recordToRelease(rec))
	if err != nil {
		return broadcast.Reply{}, classifyRPCError(peer.ID, err)
	}
	return protoToReply(resp), nil
}

// classifyRPCError marks connectivity failures as unreachable so the
// broadcast layer can distinguish them from handler rejections.
func classifyRPCError(peerID string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: peer %s: %v", broadcast.ErrUnreachable, peerID, err)
	default:
		return fmt.Errorf("peer %s: %w", peerID, err)
	}
}
