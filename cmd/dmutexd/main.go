package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dmutex/internal/config"
	"dmutex/internal/coordinator"
	"dmutex/internal/node"
)

func main() {
	nodeID := flag.String("node-id", "", "unique process ID (required)")
	listen := flag.String("listen", ":50051", "listen address")
	peersStr := flag.String("peers", "", "comma-separated membership list: id=addr,id=addr")
	acquire := flag.String("acquire", "", "resource to acquire once the cluster is up")
	hold := flag.Duration("hold", 2*time.Second, "how long to hold an acquired resource")
	startDelay := flag.Duration("start-delay", 3*time.Second, "wait before acquiring so peers can come up")
	peerTimeout := flag.Duration("peer-timeout", 0, "per-peer RPC timeout during broadcasts (0 = default)")
	dumpHistory := flag.Bool("history", false, "dump the clock history on shutdown")
	flag.Parse()

	if *nodeID == "" {
		fmt.Fprintln(os.Stderr, "Error: --node-id is required")
		flag.Usage()
		os.Exit(1)
	}

	peers, err := config.ParsePeers(*peersStr)
	if err != nil {
		log.Fatalf("Failed to parse peers: %v", err)
	}

	cfg := config.Config{
		NodeID:     *nodeID,
		ListenAddr: *listen,
		Peers:      peers,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	n := node.NewNode(cfg, coordinator.Options{PerPeerTimeout: *peerTimeout})

	errCh := make(chan error, 1)
	go func() {
		errCh <- n.Start()
	}()

	if *acquire != "" {
		go runWorkload(n, *acquire, *hold, *startDelay)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Node stopped: %v", err)
	case sig := <-sigCh:
		log.Printf("[%s] Received %v, shutting down", *nodeID, sig)
	}

	if *dumpHistory {
		fmt.Print(n.Coordinator().History().String())
	}
	n.Stop()
}

// runWorkload acquires the resource once after a start delay, holds it, and
// releases. Used by the cluster demos to show processes taking turns.
func runWorkload(n *node.Node, resourceID string, hold, delay time.Duration) {
	time.Sleep(delay)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	grant, err := n.Acquire(ctx, resourceID)
	if err != nil {
		log.Printf("Workload acquire for %q failed: %v", resourceID, err)
		return
	}

	log.Printf("Workload holding %q for %v", resourceID, hold)
	time.Sleep(hold)

	if err := grant.Release(context.Background()); err != nil {
		log.Printf("Workload release for %q failed: %v", resourceID, err)
	}
}
