package clock

import (
	"testing"
)

func TestLamport_Tick(t *testing.T) {
	c := New(nil)
	if c.Now() != 0 {
		t.Errorf("Expected initial time 0, got %d", c.Now())
	}

	for i := int64(1); i <= 5; i++ {
		got := c.Tick("local event")
		if got != i {
			t.Errorf("Tick %d: expected %d, got %d", i, i, got)
		}
	}

	if c.Now() != 5 {
		t.Errorf("Expected time 5 after 5 ticks, got %d", c.Now())
	}
}

func TestLamport_Update(t *testing.T) {
	tests := []struct {
		name     string
		start    int64
		received int64
		want     int64
	}{
		{
			name:     "received ahead of local",
			start:    3,
			received: 10,
			want:     11,
		},
		{
			name:     "received behind local",
			start:    8,
			received: 5,
			want:     9,
		},
		{
			name:     "received equals local",
			start:    4,
			received: 4,
			want:     5,
		},
		{
			name:     "received zero",
			start:    2,
			received: 0,
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			for i := int64(0); i < tt.start; i++ {
				c.Tick("advance")
			}

			got := c.Update(tt.received, "receive")
			if got != tt.want {
				t.Errorf("Update(%d) with current=%d: expected %d, got %d",
					tt.received, tt.start, tt.want, got)
			}
		})
	}
}

func TestLamport_NowDoesNotAdvance(t *testing.T) {
	c := New(nil)
	c.Tick("event")

	before := c.Now()
	for i := 0; i < 10; i++ {
		if got := c.Now(); got != before {
			t.Errorf("Now() mutated the clock: expected %d, got %d", before, got)
		}
	}
}

type captureRecorder struct {
	entries []struct {
		ts    int64
		event string
	}
}

func (r *captureRecorder) Record(ts int64, event string) {
	r.entries = append(r.entries, struct {
		ts    int64
		event string
	}{ts, event})
}

func TestLamport_RecorderSeesEveryEvent(t *testing.T) {
	rec := &captureRecorder{}
	c := New(rec)

	c.Tick("start")
	c.Update(7, "receive from P2")
	c.Tick("send to P3")

	if len(rec.entries) != 3 {
		t.Fatalf("Expected 3 recorded events, got %d", len(rec.entries))
	}

	wantTs := []int64{1, 8, 9}
	wantEvents := []string{"start", "receive from P2", "send to P3"}
	for i, e := range rec.entries {
		if e.ts != wantTs[i] {
			t.Errorf("Entry %d: expected ts %d, got %d", i, wantTs[i], e.ts)
		}
		if e.event != wantEvents[i] {
			t.Errorf("Entry %d: expected event %q, got %q", i, wantEvents[i], e.event)
		}
	}
}
