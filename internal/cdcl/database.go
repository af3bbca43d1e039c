package cdcl

import "sort"

// database owns every clause the solver knows about — the original input
// clauses and every clause CDCL has since learned — plus the watch index
// BCP walks during propagation (§4.1, §4.2).
//
// Clauses are addressed by a dense, append-only id: database.clauses[id].
// watchedBy[l] lists the ids of clauses currently watching literal l. A
// clause is removed from a watch list by swapping it with the list's last
// entry and truncating, so the list's order is not meaningful and is not
// preserved across propagation.
type database struct {
	numVars   int
	clauses   []*clause
	watchedBy [][]int // indexed by Literal
}

func newDatabase(numVars int) *database {
	return &database{
		numVars:   numVars,
		watchedBy: make([][]int, 2*numVars+1),
	}
}

// addClauseResult reports what happened when a clause was handed to the
// database: it may have been stored, found trivially satisfied (tautology),
// found empty (immediate UNSAT), or reduced to a fact that was pushed
// straight onto the trail as a unit (possibly contradicting one already
// there).
type addClauseResult int

const (
	clauseStored addClauseResult = iota
	clauseTautology
	clauseEmpty
	clauseUnit
)

// normalize sorts and deduplicates lits in place and reports whether the
// clause is a tautology (contains both polarities of some variable).
func (db *database) normalize(lits []Literal) ([]Literal, bool) {
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	out := lits[:0]
	for i, l := range lits {
		if i > 0 && l == out[len(out)-1] {
			continue
		}
		out = append(out, l)
	}
	for i := 1; i < len(out); i++ {
		if out[i].variable(db.numVars) == out[i-1].variable(db.numVars) {
			return out, true
		}
	}
	return out, false
}

// addClause stores lits as a new input clause, bumping baseline decider
// activity for every literal of a clause that ends up with two or more
// literals (§4.1). unit, if the clause reduces to a single literal,
// is the fact to seed the trail with; the caller is responsible for
// actually assigning it.
func (db *database) addClause(lits []Literal, dec decider) (addClauseResult, int, Literal) {
	norm, tautology := db.normalize(append([]Literal(nil), lits...))
	if tautology {
		return clauseTautology, -1, noLiteral
	}
	switch len(norm) {
	case 0:
		return clauseEmpty, -1, noLiteral
	case 1:
		return clauseUnit, -1, norm[0]
	}

	id := len(db.clauses)
	c := &clause{id: id, literals: norm, w1: norm[0], w2: norm[1]}
	db.clauses = append(db.clauses, c)
	db.watch(c.w1, id)
	db.watch(c.w2, id)

	if dec != nil {
		for _, l := range norm {
			dec.onInitialOccurrence(l)
		}
	}
	return clauseStored, id, noLiteral
}

// addLearnedClause stores a freshly analyzed clause of two or more
// literals. Per §9's two-watch-correctness note, the asserting literal is
// always one watch; the other is whichever remaining literal sits at the
// highest decision level. After the backjump the asserting literal is the
// clause's only unassigned literal and is assigned true at once, while the
// other watch stays false; any later backjump that unassigns another
// literal of the clause also unassigns that watch.
func (db *database) addLearnedClause(lits []Literal, assertingLit Literal, levelOf func(Literal) int) int {
	norm, _ := db.normalize(append([]Literal(nil), lits...))

	w1 := assertingLit
	w2 := noLiteral
	bestLevel := -1
	for _, l := range norm {
		if l == assertingLit {
			continue
		}
		if lvl := levelOf(l); lvl > bestLevel {
			bestLevel = lvl
			w2 = l
		}
	}
	if w2 == noLiteral {
		w2 = norm[0]
		if w2 == w1 {
			w2 = norm[1]
		}
	}

	id := len(db.clauses)
	c := &clause{id: id, literals: norm, w1: w1, w2: w2, learnt: true}
	db.clauses = append(db.clauses, c)
	db.watch(w1, id)
	db.watch(w2, id)
	return id
}

func (db *database) watch(l Literal, id int) {
	db.watchedBy[l] = append(db.watchedBy[l], id)
}

func (db *database) clause(id int) *clause {
	return db.clauses[id]
}
