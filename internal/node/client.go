package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	dmutexpb "dmutex/internal/gen/api"
)

const (
	// Connection timeout
	dialTimeout = 5 * time.Second
)

// ClientManager manages gRPC clients to peer processes.
type ClientManager struct {
	mu      sync.RWMutex
	clients map[string]dmutexpb.ExclusionManagerClient
	conns   map[string]*grpc.ClientConn
}

// NewClientManager creates a new client manager.
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[string]dmutexpb.ExclusionManagerClient),
		conns:   make(map[string]*grpc.ClientConn),
	}
}

// GetClient returns a gRPC client for the given peer address.
// Creates a new connection if one doesn't exist.
func (cm *ClientManager) GetClient(addr string) (dmutexpb.ExclusionManagerClient, error) {
	cm.mu.RLock()
	client, exists := cm.clients[addr]
	cm.mu.RUnlock()

	if exists {
		return client, nil
	}

	// Create new connection
	cm.mu.Lock()
	defer cm.mu.Unlock()

	// Double-check after acquiring write lock
	if client, exists := cm.clients[addr]; exists {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	client = dmutexpb.NewExclusionManagerClient(conn)
	cm.clients[addr] = client
	cm.conns[addr] = conn
	return client, nil
}

// Close closes all client connections.
func (cm *ClientManager) Close() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for addr, conn := range cm.conns {
		conn.Close()
		delete(cm.conns, addr)
		delete(cm.clients, addr)
	}
}
