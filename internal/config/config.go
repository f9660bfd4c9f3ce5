package config

import (
	"fmt"
	"strings"
)

// Peer represents a peer process in the fixed membership.
type Peer struct {
	ID   string
	Addr string
}

// Config holds the process configuration. Membership is fixed and known to
// every member at start; there is no dynamic join or leave.
type Config struct {
	NodeID     string
	ListenAddr string
	Peers      []Peer
}

// ParsePeers parses a comma-separated list of peers in the format:
// "id1=addr1,id2=addr2,id3=addr3"
func ParsePeers(peersStr string) ([]Peer, error) {
	if peersStr == "" {
		return []Peer{}, nil
	}

	parts := strings.Split(peersStr, ",")
	peers := make([]Peer, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid peer format: %s (expected id=addr)", part)
		}

		id := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if id == "" || addr == "" {
			return nil, fmt.Errorf("peer ID and address cannot be empty: %s", part)
		}

		peers = append(peers, Peer{
			ID:   id,
			Addr: addr,
		})
	}

	return peers, nil
}

// Validate checks the configuration for the basics the engine depends on:
// a node identity, a listen address, and a duplicate-free peer set.
func (c *Config) Validate() error {
	if c.NodeID == "" {
		return fmt.Errorf("node ID cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}

	seen := make(map[string]bool, len(c.Peers))
	for _, p := range c.Peers {
		if seen[p.ID] {
			return fmt.Errorf("duplicate peer ID: %s", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// PeerList returns the peers excluding this process itself. The peer list
// supplied on the command line may include the full membership, self
// included; the coordinator only fans out to the others.
func (c *Config) PeerList() []Peer {
	peers := make([]Peer, 0, len(c.Peers))
	for _, p := range c.Peers {
		if p.ID != c.NodeID {
			peers = append(peers, p)
		}
	}
	return peers
}
