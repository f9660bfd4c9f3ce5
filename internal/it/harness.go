package it

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	dmutexpb "dmutex/internal/gen/api"
)

// Cluster represents a test cluster of processes
type Cluster struct {
	nodes      []*Node
	logDir     string
	binaryPath string
	mu         sync.Mutex
}

// Node represents a single process in the test cluster
type Node struct {
	ID      string
	Addr    string
	Port    int
	cmd     *exec.Cmd
	logFile *os.File
	client  dmutexpb.ExclusionManagerClient
}

// NewCluster creates a new test cluster harness
func NewCluster(binaryPath string) (*Cluster, error) {
	logDir := filepath.Join(".local", "it-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Cluster{
		nodes:      make([]*Node, 0),
		logDir:     logDir,
		binaryPath: binaryPath,
	}, nil
}

// StartCluster starts a fully-connected cluster of n processes. Membership
// is static, so every process gets the complete peer list up front.
func (c *Cluster) StartCluster(ctx context.Context, n int) error {
	basePort := 60051

	// Full membership list, shared by every process
	peerStr := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			peerStr += ","
		}
		peerStr += fmt.Sprintf("p%d=127.0.0.1:%d", i, basePort+i-1)
	}

	for i := 1; i <= n; i++ {
		nodeID := fmt.Sprintf("p%d", i)
		port := basePort + i - 1
		if err := c.StartNode(ctx, nodeID, port, peerStr); err != nil {
			c.Stop()
			return fmt.Errorf("failed to start node %s: %w", nodeID, err)
		}
	}

	return nil
}

// StartNode starts a single process in the cluster
func (c *Cluster) StartNode(ctx context.Context, nodeID string, port int, peerStr string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	addr := fmt.Sprintf(":%d", port)
	logPath := filepath.Join(c.logDir, fmt.Sprintf("%s.log", nodeID))
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.binaryPath,
		"--node-id", nodeID,
		"--listen", addr,
		"--peers", peerStr,
	)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return fmt.Errorf("failed to start node %s: %w", nodeID, err)
	}

	conn, err := grpc.DialContext(ctx,
		fmt.Sprintf("127.0.0.1:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		cmd.Process.Kill()
		logFile.Close()
		return fmt.Errorf("failed to dial node %s: %w", nodeID, err)
	}

	node := &Node{
		ID:      nodeID,
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Port:    port,
		cmd:     cmd,
		logFile: logFile,
		client:  dmutexpb.NewExclusionManagerClient(conn),
	}

	c.nodes = append(c.nodes, node)

	// Wait for node to be ready
	if err := c.waitForReady(ctx, node, 10*time.Second); err != nil {
		node.Stop()
		return fmt.Errorf("node %s failed to become ready: %w", nodeID, err)
	}

	return nil
}

// waitForReady waits for a process to answer liveness pings
func (c *Cluster) waitForReady(ctx context.Context, node *Node, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout waiting for node %s to be ready", node.ID)
			}

			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			_, err := node.client.Ping(pingCtx, &dmutexpb.PingRequest{FromId: "harness"})
			cancel()

			if err == nil {
				return nil
			}
		}
	}
}

// Stop stops all processes in the cluster
func (c *Cluster) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		node.Stop()
	}
	c.nodes = nil
}

// Stop stops a single process
func (n *Node) Stop() {
	if n.cmd != nil && n.cmd.Process != nil {
		n.cmd.Process.Kill()
		n.cmd.Wait()
	}
	if n.logFile != nil {
		n.logFile.Close()
	}
}

// GetClient returns the ExclusionManager client for a process
func (n *Node) GetClient() dmutexpb.ExclusionManagerClient {
	return n.client
}

// GetNode returns a process by ID
func (c *Cluster) GetNode(nodeID string) *Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.nodes {
		if n.ID == nodeID {
			return n
		}
	}
	return nil
}

// KillNode kills a specific process
func (c *Cluster) KillNode(nodeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		if node.ID == nodeID {
			if node.cmd != nil && node.cmd.Process != nil {
				if err := node.cmd.Process.Kill(); err != nil {
					return fmt.Errorf("failed to kill node %s: %w", nodeID, err)
				}
				node.cmd.Wait()
			}
			return nil
		}
	}
	return fmt.Errorf("node %s not found", nodeID)
}
