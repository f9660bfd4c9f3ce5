package node

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dmutex/internal/coordinator"
	dmutexpb "dmutex/internal/gen/api"
)

// newTestServer builds a server over a single-process coordinator; with no
// peers the transport is never used.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	coord := coordinator.New("p1", nil, nil, coordinator.Options{})
	return NewServer(coord, "p1")
}

func TestServer_RequestEntryQueuesAndAcks(t *testing.T) {
	s := newTestServer(t)

	reply, err := s.RequestEntry(context.Background(), &dmutexpb.RequestMessage{
		Timestamp:  7,
		ProcessId:  "p2",
		ResourceId: "res",
	})
	if err != nil {
		t.Fatalf("RequestEntry failed: %v", err)
	}
	if !reply.Granted {
		t.Error("Expected request to be granted")
	}
	if reply.Timestamp <= 7 {
		t.Errorf("Expected reply timestamp past the sender's 7, got %d", reply.Timestamp)
	}
	if reply.ProcessId != "p1" {
		t.Errorf("Expected reply from p1, got %s", reply.ProcessId)
	}

	st, err := s.GetStatus(context.Background(), &dmutexpb.StatusRequest{ProcessId: "test"})
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if st.InCriticalSection {
		t.Error("Queuing a peer request must not enter the critical section")
	}
	if len(st.PendingRequests) != 1 || !strings.Contains(st.PendingRequests[0], "p2@7") {
		t.Errorf("Expected p2's request pending, got %v", st.PendingRequests)
	}
}

func TestServer_ReleaseEntryPrunes(t *testing.T) {
	s := newTestServer(t)

	if _, err := s.RequestEntry(context.Background(), &dmutexpb.RequestMessage{
		Timestamp: 7, ProcessId: "p2", ResourceId: "res",
	}); err != nil {
		t.Fatalf("RequestEntry failed: %v", err)
	}

	reply, err := s.ReleaseEntry(context.Background(), &dmutexpb.ReleaseMessage{
		Timestamp: 12, ProcessId: "p2", ResourceId: "res",
	})
	if err != nil {
		t.Fatalf("ReleaseEntry failed: %v", err)
	}
	if !reply.Granted {
		t.Error("Expected release to be acknowledged")
	}

	st, err := s.GetStatus(context.Background(), &dmutexpb.StatusRequest{ProcessId: "test"})
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if len(st.PendingRequests) != 0 {
		t.Errorf("Expected empty queue after release, got %v", st.PendingRequests)
	}
}

func TestServer_RejectsMalformedMessages(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name string
		req  *dmutexpb.RequestMessage
	}{
		{"empty process id", &dmutexpb.RequestMessage{Timestamp: 1, ResourceId: "res"}},
		{"empty resource id", &dmutexpb.RequestMessage{Timestamp: 1, ProcessId: "p2"}},
		{"zero timestamp", &dmutexpb.RequestMessage{ProcessId: "p2", ResourceId: "res"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.RequestEntry(context.Background(), tc.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("Expected InvalidArgument, got %v", err)
			}
		})
	}

	_, err := s.ReleaseEntry(context.Background(), &dmutexpb.ReleaseMessage{
		Timestamp: 1, ProcessId: "", ResourceId: "res",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("Expected InvalidArgument for malformed release, got %v", err)
	}
}

func TestServer_StatusAdvancesTimestamp(t *testing.T) {
	s := newTestServer(t)

	first, err := s.GetStatus(context.Background(), &dmutexpb.StatusRequest{ProcessId: "test"})
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	second, err := s.GetStatus(context.Background(), &dmutexpb.StatusRequest{ProcessId: "test"})
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if second.CurrentTimestamp <= first.CurrentTimestamp {
		t.Errorf("Expected status queries to advance the clock: %d then %d",
			first.CurrentTimestamp, second.CurrentTimestamp)
	}
}

func TestServer_Ping(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Ping(context.Background(), &dmutexpb.PingRequest{FromId: "probe"})
	if err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if resp.ProcessId != "p1" {
		t.Errorf("Expected ping answer from p1, got %s", resp.ProcessId)
	}
}
