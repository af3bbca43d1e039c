package cdcl

// pqueue is a binary max-heap over (score, key) pairs, backed by a pos[]
// sidecar that maps a key straight to its heap slot. It is the branching
// heuristic's priority queue (§4.6): VSIDS keys it by literal, MINISAT keys
// it by variable, and both rely on the same four operations.
//
// Invariants maintained by every method below:
//
//	PQ1: pos[k] == i  implies heap[i].key == k, for any i != absent.
//	PQ2: heap is a max-heap ordered by score.
//	PQ3: a key is present in the heap iff it is currently unassigned.
//
// The design mirrors gophersat's solver/queue.go content/indices heap, with
// scores carried directly in the heap array instead of referencing an
// external activity slice, so that increase/remove/insert match the
// algorithm description in §4.6 literally.
type pqueue struct {
	heap []pqEntry
	pos  []int // key -> heap index, or absent
}

type pqEntry struct {
	score float64
	key   int
}

const absent = -1

// newPQueue returns an empty queue whose pos sidecar can address keys in
// [0, maxKey].
func newPQueue(maxKey int) *pqueue {
	pos := make([]int, maxKey+1)
	for i := range pos {
		pos[i] = absent
	}
	return &pqueue{pos: pos}
}

func (q *pqueue) Len() int {
	return len(q.heap)
}

func (q *pqueue) contains(key int) bool {
	return key < len(q.pos) && q.pos[key] != absent
}

// insert appends key with the given score and restores heap order. The key
// must not already be present.
func (q *pqueue) insert(key int, score float64) {
	q.heap = append(q.heap, pqEntry{score: score, key: key})
	i := len(q.heap) - 1
	q.pos[key] = i
	q.siftUp(i)
}

// top pops and returns the key with the largest score. ok is false if the
// queue is empty.
func (q *pqueue) top() (key int, ok bool) {
	if len(q.heap) == 0 {
		return 0, false
	}
	key = q.heap[0].key
	last := len(q.heap) - 1
	q.heap[0] = q.heap[last]
	q.pos[q.heap[0].key] = 0
	q.pos[key] = absent
	q.heap = q.heap[:last]
	if len(q.heap) > 0 {
		q.siftDown(0)
	}
	return key, true
}

// increase adds delta to key's score and sifts the entry up to restore heap
// order, so delta must not be negative. It is a no-op if key is not
// currently present.
func (q *pqueue) increase(key int, delta float64) {
	if !q.contains(key) {
		return
	}
	i := q.pos[key]
	q.heap[i].score += delta
	q.siftUp(i)
}

// remove evicts key from the heap, wherever it sits, using the
// swap-with-last-then-repair idiom described in §4.6. It is a no-op if key
// is not present.
func (q *pqueue) remove(key int) {
	if !q.contains(key) {
		return
	}
	i := q.pos[key]
	last := len(q.heap) - 1
	removedScore := q.heap[i].score

	q.heap[i] = q.heap[last]
	q.pos[q.heap[i].key] = i
	q.pos[key] = absent
	q.heap = q.heap[:last]

	if i < len(q.heap) {
		if q.heap[i].score > removedScore {
			q.siftUp(i)
		} else {
			q.siftDown(i)
		}
	}
}

func (q *pqueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.heap[i].score <= q.heap[parent].score {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *pqueue) siftDown(i int) {
	n := len(q.heap)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && q.heap[left].score > q.heap[largest].score {
			largest = left
		}
		if right < n && q.heap[right].score > q.heap[largest].score {
			largest = right
		}
		if largest == i {
			break
		}
		q.swap(i, largest)
		i = largest
	}
}

func (q *pqueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i].key] = i
	q.pos[q.heap[j].key] = j
}
