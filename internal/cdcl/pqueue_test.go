package cdcl

import "testing"

func TestPQueueTopReturnsMax(t *testing.T) {
	q := newPQueue(10)
	q.insert(1, 5)
	q.insert(2, 9)
	q.insert(3, 1)

	key, ok := q.top()
	if !ok || key != 2 {
		t.Fatalf("top() = (%d, %v), want (2, true)", key, ok)
	}
	key, ok = q.top()
	if !ok || key != 1 {
		t.Fatalf("top() = (%d, %v), want (1, true)", key, ok)
	}
	key, ok = q.top()
	if !ok || key != 3 {
		t.Fatalf("top() = (%d, %v), want (3, true)", key, ok)
	}
	if _, ok := q.top(); ok {
		t.Fatalf("top() on empty queue returned ok=true")
	}
}

func TestPQueueIncreaseResortsHeap(t *testing.T) {
	q := newPQueue(10)
	q.insert(1, 1)
	q.insert(2, 2)
	q.insert(3, 3)

	q.increase(1, 10)

	key, ok := q.top()
	if !ok || key != 1 {
		t.Fatalf("top() = (%d, %v), want (1, true) after increase", key, ok)
	}
}

func TestPQueueRemoveIsNoOpWhenAbsent(t *testing.T) {
	q := newPQueue(10)
	q.insert(1, 1)
	q.remove(5) // never inserted
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
}

func TestPQueueRemoveThenReinsert(t *testing.T) {
	q := newPQueue(10)
	for key := 1; key <= 5; key++ {
		q.insert(key, float64(key))
	}
	q.remove(3)
	if q.contains(3) {
		t.Fatalf("contains(3) = true after remove")
	}
	q.insert(3, 100)
	key, ok := q.top()
	if !ok || key != 3 {
		t.Fatalf("top() = (%d, %v), want (3, true) after reinsert with highest score", key, ok)
	}
}

// TestPQueueInvariants drains a queue loaded with a shuffled score order
// and checks it always pops in non-increasing score order, which
// exercises PQ1-PQ3 together: a broken pos[] sidecar or a heap-ordering bug
// in siftUp/siftDown would surface as an out-of-order pop.
func TestPQueueInvariants(t *testing.T) {
	scores := []float64{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	q := newPQueue(len(scores))
	for key, score := range scores {
		q.insert(key, score)
	}

	first := true
	last := 0.0
	for q.Len() > 0 {
		key, ok := q.top()
		if !ok {
			t.Fatalf("top() returned ok=false with Len() = %d", q.Len())
		}
		if !first && scores[key] > last {
			t.Fatalf("popped score %v after %v, heap order violated", scores[key], last)
		}
		first = false
		last = scores[key]
	}
}
