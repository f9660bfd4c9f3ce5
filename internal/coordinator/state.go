package coordinator

// State is the phase of the coordinator's request/enter/release cycle.
// The coordinator runs one cycle at a time.
type State int

const (
	// Idle means no request is in flight and no resource is held.
	Idle State = iota
	// Requesting means the own request has been stamped and queued locally.
	Requesting
	// WaitingForAdmission means the request has been broadcast and the
	// coordinator is waiting for the admission predicate.
	WaitingForAdmission
	// InCriticalSection means the resource is held.
	InCriticalSection
	// Releasing means the release broadcast is in progress.
	Releasing
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Requesting:
		return "REQUESTING"
	case WaitingForAdmission:
		return "WAITING_FOR_ADMISSION"
	case InCriticalSection:
		return "IN_CRITICAL_SECTION"
	case Releasing:
		return "RELEASING"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is a point-in-time view of the coordinator, served to status
// queries without mutating the queue.
type Snapshot struct {
	ProcessID         string
	State             State
	InCriticalSection bool
	HeldResource      string
	CurrentTimestamp  int64
	PendingRequests   []string
}
