package node

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dmutex/internal/coordinator"
	dmutexpb "dmutex/internal/gen/api"
)

// Server implements the ExclusionManager gRPC service. It validates and
// converts wire messages and delegates all protocol logic to the
// coordinator.
type Server struct {
	dmutexpb.UnimplementedExclusionManagerServer
	coord  *coordinator.Coordinator
	nodeID string
}

// NewServer creates a new gRPC server instance.
func NewServer(coord *coordinator.Coordinator, nodeID string) *Server {
	return &Server{
		coord:  coord,
		nodeID: nodeID,
	}
}

// RequestEntry handles an inbound critical-section request from a peer.
func (s *Server) RequestEntry(ctx context.Context, req *dmutexpb.RequestMessage) (*dmutexpb.ReplyMessage, error) {
	log.Printf("[%s] RequestEntry: process_id=%s, resource_id=%s, ts=%d",
		s.nodeID, req.ProcessId, req.ResourceId, req.Timestamp)

	reply, err := s.coord.HandleRequest(requestToRecord(req))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return replyToProto(reply), nil
}

// ReleaseEntry handles an inbound release from a peer.
func (s *Server) ReleaseEntry(ctx context.Context, req *dmutexpb.ReleaseMessage) (*dmutexpb.ReplyMessage, error) {
	log.Printf("[%s] ReleaseEntry: process_id=%s, resource_id=%s, ts=%d",
		s.nodeID, req.ProcessId, req.ResourceId, req.Timestamp)

	reply, err := s.coord.HandleRelease(releaseToRecord(req))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid release: %v", err)
	}
	return replyToProto(reply), nil
}

// GetStatus reports the process's current state and pending queue.
func (s *Server) GetStatus(ctx context.Context, req *dmutexpb.StatusRequest) (*dmutexpb.StatusResponse, error) {
	log.Printf("[%s] GetStatus: from=%s", s.nodeID, req.ProcessId)

	snap := s.coord.Snapshot(req.ProcessId)
	return &dmutexpb.StatusResponse{
		ProcessId:         snap.ProcessID,
		InCriticalSection: snap.InCriticalSection,
		CurrentTimestamp:  snap.CurrentTimestamp,
		PendingRequests:   snap.PendingRequests,
	}, nil
}

// Ping answers liveness probes.
func (s *Server) Ping(ctx context.Context, req *dmutexpb.PingRequest) (*dmutexpb.PingResponse, error) {
	return &dmutexpb.PingResponse{ProcessId: s.nodeID}, nil
}
