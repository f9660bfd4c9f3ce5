package queue

import (
	"math/rand"
	"testing"
)

// TestLess_Property_StrictTotalOrder tests that for all distinct records
// exactly one of a<b, b<a holds.
func TestLess_Property_StrictTotalOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ids := []string{"P1", "P2", "P3", "P4"}

	randomRecord := func() Record {
		return Record{
			Timestamp:  rng.Int63n(5),
			ProcessID:  ids[rng.Intn(len(ids))],
			ResourceID: "R",
		}
	}

	for i := 0; i < 2000; i++ {
		a, b := randomRecord(), randomRecord()
		distinct := a.Timestamp != b.Timestamp || a.ProcessID != b.ProcessID

		ab, ba := Less(a, b), Less(b, a)
		if ab && ba {
			t.Fatalf("Order not antisymmetric: %v and %v each less than the other", a, b)
		}
		if distinct && !ab && !ba {
			t.Fatalf("Order not total: neither %v < %v nor %v < %v", a, b, b, a)
		}
		if !distinct && (ab || ba) {
			t.Fatalf("Order not irreflexive over equal keys: %v vs %v", a, b)
		}
	}
}

// TestLess_Property_Transitive tests transitivity over random triples.
func TestLess_Property_Transitive(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ids := []string{"P1", "P2", "P3", "P4", "P5"}

	for i := 0; i < 2000; i++ {
		a := Record{Timestamp: rng.Int63n(4), ProcessID: ids[rng.Intn(len(ids))]}
		b := Record{Timestamp: rng.Int63n(4), ProcessID: ids[rng.Intn(len(ids))]}
		c := Record{Timestamp: rng.Int63n(4), ProcessID: ids[rng.Intn(len(ids))]}

		if Less(a, b) && Less(b, c) && !Less(a, c) {
			t.Fatalf("Order not transitive: %v < %v < %v but not %v < %v", a, b, c, a, c)
		}
	}
}

// TestQueue_Property_HeadIsMinimum tests that Head always agrees with the
// first element of the sorted snapshot.
func TestQueue_Property_HeadIsMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	q := New()

	for i := 0; i < 500; i++ {
		if rng.Intn(3) == 0 && q.Len() > 0 {
			victim := q.Snapshot()[rng.Intn(q.Len())]
			q.Remove(victim.ProcessID, victim.ResourceID)
		} else {
			q.Insert(Record{
				Timestamp:  rng.Int63n(50),
				ProcessID:  "P" + string(rune('1'+rng.Intn(9))),
				ResourceID: "R" + string(rune('1'+rng.Intn(3))),
			})
		}

		head, ok := q.Head()
		snapshot := q.Snapshot()
		if ok != (len(snapshot) > 0) {
			t.Fatalf("Head presence disagrees with snapshot length %d", len(snapshot))
		}
		if ok && head != snapshot[0] {
			t.Fatalf("Head %v differs from snapshot minimum %v", head, snapshot[0])
		}
	}
}
