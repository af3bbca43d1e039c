package cdcl

// decider implements the branching heuristic (§4.5): it picks the next
// variable to decide and tracks whatever activity bookkeeping its policy
// needs. The solver calls the onX hooks at every point the trail changes so
// that each policy's bookkeeping stays correct without the solver having to
// know which policy is active.
type decider interface {
	name() string

	// init is called once, after every clause from the input has been
	// added and any unit facts have seeded the trail at level 0. It seeds
	// the priority queue (if any) with the baseline activity counted
	// during clause insertion, skipping variables already assigned.
	init(numVars int, assigned func(v int) bool)

	// onAssign is called for every variable that becomes assigned, by
	// whatever means (decision, implication, or the pending node a
	// backjump reinstates).
	onAssign(v int, value bool)

	// onUnassign is called when a backjump pops v off the trail.
	onUnassign(v int)

	// onInitialOccurrence bumps the baseline activity of a literal found
	// in a clause at insertion time (§4.1).
	onInitialOccurrence(l Literal)

	// onLearnedClause bumps the activity of every literal in a freshly
	// learned clause and advances the policy's growth increment (§4.3).
	onLearnedClause(lits []Literal)

	// decide picks the next branching literal. ok is false once every
	// variable is assigned, which the search loop takes as SAT.
	decide() (v int, value bool, ok bool)
}

// newDecider builds the decider named by policy, or an error if the name is
// not one of ORDERED, VSIDS, MINISAT.
func newDecider(policy string, numVars int) (decider, error) {
	switch policy {
	case "ORDERED":
		return newOrderedDecider(numVars), nil
	case "VSIDS":
		return newVSIDSDecider(numVars), nil
	case "MINISAT":
		return newMiniSatDecider(numVars), nil
	default:
		return nil, &configError{kind: "decider", value: policy}
	}
}

// orderedDecider always branches on the smallest unassigned variable, set
// to true. It needs no activity bookkeeping at all.
type orderedDecider struct {
	numVars  int
	assigned func(v int) bool
}

func newOrderedDecider(numVars int) *orderedDecider {
	return &orderedDecider{numVars: numVars}
}

func (*orderedDecider) name() string { return "ORDERED" }

func (d *orderedDecider) init(numVars int, assigned func(v int) bool) {
	d.numVars = numVars
	d.assigned = assigned
}

func (*orderedDecider) onAssign(v int, value bool)    {}
func (*orderedDecider) onUnassign(v int)               {}
func (*orderedDecider) onInitialOccurrence(l Literal)  {}
func (*orderedDecider) onLearnedClause(lits []Literal) {}

func (d *orderedDecider) decide() (int, bool, bool) {
	for v := 1; v <= d.numVars; v++ {
		if !d.assigned(v) {
			return v, true, true
		}
	}
	return 0, false, false
}

// vsidsDecider scores individual literals. Each conflict bumps every
// literal of the learned clause by a growing increment instead of
// periodically decaying every score, which would cost O(2N) per conflict;
// growing the increment mimics the same relative decay (§4.3).
type vsidsDecider struct {
	numVars int
	score   []float64 // indexed by Literal, size 2*numVars+1
	pq      *pqueue
	incr    float64
}

func newVSIDSDecider(numVars int) *vsidsDecider {
	return &vsidsDecider{
		numVars: numVars,
		score:   make([]float64, 2*numVars+1),
		pq:      newPQueue(2 * numVars),
		incr:    1,
	}
}

func (*vsidsDecider) name() string { return "VSIDS" }

func (d *vsidsDecider) init(numVars int, assigned func(v int) bool) {
	for v := 1; v <= numVars; v++ {
		if assigned(v) {
			continue
		}
		d.pq.insert(int(posLiteral(v)), d.score[posLiteral(v)])
		d.pq.insert(int(negLiteral(v, numVars)), d.score[negLiteral(v, numVars)])
	}
}

func (d *vsidsDecider) onAssign(v int, value bool) {
	d.pq.remove(int(posLiteral(v)))
	d.pq.remove(int(negLiteral(v, d.numVars)))
}

func (d *vsidsDecider) onUnassign(v int) {
	pos, neg := posLiteral(v), negLiteral(v, d.numVars)
	d.pq.insert(int(pos), d.score[pos])
	d.pq.insert(int(neg), d.score[neg])
}

func (d *vsidsDecider) onInitialOccurrence(l Literal) {
	d.score[l]++
}

func (d *vsidsDecider) onLearnedClause(lits []Literal) {
	for _, l := range lits {
		d.bump(l, d.incr)
	}
	d.incr += 0.75
	if d.incr > 1e100 {
		d.rescale()
	}
}

func (d *vsidsDecider) bump(l Literal, delta float64) {
	d.score[l] += delta
	if d.pq.contains(int(l)) {
		d.pq.increase(int(l), delta)
	}
	if d.score[l] > 1e100 {
		d.rescale()
	}
}

func (d *vsidsDecider) rescale() {
	for i := range d.score {
		d.score[i] *= 1e-100
	}
	d.incr *= 1e-100
}

func (d *vsidsDecider) decide() (int, bool, bool) {
	lit, ok := d.pq.top()
	if !ok {
		return 0, false, false
	}
	l := Literal(lit)
	v := l.variable(d.numVars)
	value := !l.isNegative(d.numVars)
	return v, value, true
}

// miniSatDecider scores variables directly and remembers the last polarity
// each one was assigned (phase saving), so that re-deciding a variable after
// a restart tends to repeat the assignment that search had settled into.
type miniSatDecider struct {
	numVars  int
	score    []float64 // indexed by variable, size numVars+1
	phase    []bool
	hasPhase []bool
	pq       *pqueue
	incr     float64
	decay    float64
}

func newMiniSatDecider(numVars int) *miniSatDecider {
	return &miniSatDecider{
		numVars:  numVars,
		score:    make([]float64, numVars+1),
		phase:    make([]bool, numVars+1),
		hasPhase: make([]bool, numVars+1),
		pq:       newPQueue(numVars),
		incr:     1,
		decay:    0.85,
	}
}

func (*miniSatDecider) name() string { return "MINISAT" }

func (d *miniSatDecider) init(numVars int, assigned func(v int) bool) {
	for v := 1; v <= numVars; v++ {
		if assigned(v) {
			continue
		}
		d.pq.insert(v, d.score[v])
	}
}

func (d *miniSatDecider) onAssign(v int, value bool) {
	d.pq.remove(v)
	d.phase[v] = value
	d.hasPhase[v] = true
}

func (d *miniSatDecider) onUnassign(v int) {
	d.pq.insert(v, d.score[v])
}

func (d *miniSatDecider) onInitialOccurrence(l Literal) {
	d.score[l.variable(d.numVars)]++
}

func (d *miniSatDecider) onLearnedClause(lits []Literal) {
	for _, l := range lits {
		d.bump(l.variable(d.numVars), d.incr)
	}
	d.incr /= d.decay
	if d.incr > 1e100 {
		d.rescale()
	}
}

func (d *miniSatDecider) bump(v int, delta float64) {
	d.score[v] += delta
	if d.pq.contains(v) {
		d.pq.increase(v, delta)
	}
	if d.score[v] > 1e100 {
		d.rescale()
	}
}

func (d *miniSatDecider) rescale() {
	for i := range d.score {
		d.score[i] *= 1e-100
	}
	d.incr *= 1e-100
}

func (d *miniSatDecider) decide() (int, bool, bool) {
	v, ok := d.pq.top()
	if !ok {
		return 0, false, false
	}
	value := d.hasPhase[v] && d.phase[v]
	return v, value, true
}
