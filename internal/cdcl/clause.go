package cdcl

// clause is a stored disjunction of literals. Clauses are append-only and
// identified by their position in the database's clauses slice, a dense id
// that stays stable for the clause's lifetime.
type clause struct {
	id       int
	literals []Literal

	// w1 and w2 are the two literals of this clause currently registered in
	// the watch index. They are literal values, not positions: unlike a
	// MiniSat-style watcher, nothing here assumes they sit at literals[0]
	// and literals[1] once propagation starts moving them around.
	w1, w2 Literal

	learnt bool
}

// otherWatch returns whichever of the clause's two watches is not l.
func (c *clause) otherWatch(l Literal) Literal {
	if c.w1 == l {
		return c.w2
	}
	return c.w1
}

// replaceWatch swaps watch literal old for new on this clause.
func (c *clause) replaceWatch(old, new_ Literal) {
	if c.w1 == old {
		c.w1 = new_
	} else {
		c.w2 = new_
	}
}
