package node

import (
	"context"
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"dmutex/internal/config"
	"dmutex/internal/coordinator"
	dmutexpb "dmutex/internal/gen/api"
)

// Node is one process of the coordination cluster: a coordinator wired to
// its peers over gRPC plus the server that exposes it.
type Node struct {
	nodeID     string
	listenAddr string
	grpcServer *grpc.Server
	coord      *coordinator.Coordinator
	clientMgr  *ClientManager
}

// NewNode creates a new node instance from validated configuration.
func NewNode(cfg config.Config, opts coordinator.Options) *Node {
	clientMgr := NewClientManager()
	coord := coordinator.New(cfg.NodeID, cfg.PeerList(), NewTransport(clientMgr), opts)

	return &Node{
		nodeID:     cfg.NodeID,
		listenAddr: cfg.ListenAddr,
		coord:      coord,
		clientMgr:  clientMgr,
	}
}

// Coordinator returns the node's mutual-exclusion coordinator.
func (n *Node) Coordinator() *coordinator.Coordinator {
	return n.coord
}

// Acquire requests exclusive access to the resource, blocking until the
// cluster admits this process.
func (n *Node) Acquire(ctx context.Context, resourceID string) (*coordinator.Grant, error) {
	return n.coord.Acquire(ctx, resourceID)
}

// Start starts the gRPC server and begins listening.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}

	n.grpcServer = grpc.NewServer()
	dmutexpb.RegisterExclusionManagerServer(n.grpcServer, NewServer(n.coord, n.nodeID))

	// Enable gRPC reflection for grpcurl
	reflection.Register(n.grpcServer)

	log.Printf("[%s] Starting node on %s", n.nodeID, n.listenAddr)

	if err := n.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop gracefully stops the node.
func (n *Node) Stop() {
	if n.grpcServer != nil {
		log.Printf("[%s] Stopping node", n.nodeID)
		n.grpcServer.GracefulStop()
	}
	n.clientMgr.Close()
}
