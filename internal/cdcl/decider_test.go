package cdcl

import "testing"

func TestOrderedDeciderPicksSmallestUnassigned(t *testing.T) {
	assigned := map[int]bool{1: true}
	d := newOrderedDecider(3)
	d.init(3, func(v int) bool { return assigned[v] })

	v, value, ok := d.decide()
	if !ok || v != 2 || !value {
		t.Fatalf("decide() = (%d, %v, %v), want (2, true, true)", v, value, ok)
	}
}

func TestOrderedDeciderNoneLeftMeansDone(t *testing.T) {
	d := newOrderedDecider(2)
	d.init(2, func(v int) bool { return true })
	if _, _, ok := d.decide(); ok {
		t.Fatalf("decide() ok = true with every variable assigned")
	}
}

func TestVSIDSDeciderSkipsAssignedVariables(t *testing.T) {
	d := newVSIDSDecider(3)
	d.onInitialOccurrence(posLiteral(2))
	d.onInitialOccurrence(posLiteral(2))
	d.init(3, func(v int) bool { return false })
	d.onAssign(2, true) // variable 2 becomes assigned after the queue was seeded

	v, _, ok := d.decide()
	if !ok || v == 2 {
		t.Fatalf("decide() returned assigned variable 2 (ok=%v)", ok)
	}
}

func TestVSIDSDeciderReinsertOnUnassign(t *testing.T) {
	d := newVSIDSDecider(2)
	d.init(2, func(v int) bool { return false })
	v1, _, _ := d.decide()
	d.onAssign(v1, true)

	d.onUnassign(v1)
	if !d.pq.contains(int(posLiteral(v1))) || !d.pq.contains(int(negLiteral(v1, 2))) {
		t.Fatalf("variable %d not fully reinserted after onUnassign", v1)
	}
}

func TestMiniSatDeciderUsesSavedPhase(t *testing.T) {
	d := newMiniSatDecider(1)
	d.init(1, func(v int) bool { return false })
	d.onAssign(1, true)
	d.onUnassign(1)

	_, value, ok := d.decide()
	if !ok || !value {
		t.Fatalf("decide() = (_, %v, %v), want value=true from saved phase", value, ok)
	}
}

func TestNewDeciderRejectsUnknownPolicy(t *testing.T) {
	if _, err := newDecider("BOGUS", 1); err == nil {
		t.Fatalf("newDecider(\"BOGUS\", 1) succeeded, want error")
	}
}
