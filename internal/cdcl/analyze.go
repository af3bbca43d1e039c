package cdcl

// markSeen records that variable v has been folded into the working clause
// this conflict, so a later antecedent that also mentions v is skipped
// instead of resolved in twice.
func (s *Solver) markSeen(v int) {
	s.seenVar[v] = true
	s.seenTouched = append(s.seenTouched, v)
}

// clearSeen undoes every markSeen call made during the conflict just
// analyzed, ready for the next one.
func (s *Solver) clearSeen() {
	for _, v := range s.seenTouched {
		s.seenVar[v] = false
	}
	s.seenTouched = s.seenTouched[:0]
}

// analyze performs first-UIP conflict analysis (§4.3) starting from the
// conflict node BCP left on top of the trail. It walks the trail backward
// from the conflict, resolving the current clause with the antecedent of
// whichever variable the scan reaches next, marking each variable seen so
// it folds into the working clause at most once rather than being
// re-scanned from the original clauses on every step.
//
// It returns the level to backjump to, the learned clause (nil if analysis
// reduced to a single fact with no clause worth storing), the literal that
// asserts the new fact, and unsat=true if the conflict sits at level 0,
// meaning the formula has no model.
func (s *Solver) analyze() (backtrackLevel int, learnt []Literal, assertingLit Literal, unsat bool) {
	confNode := s.trail[len(s.trail)-1]
	s.trail = s.trail[:len(s.trail)-1]
	if s.trailPos > len(s.trail) {
		s.trailPos = len(s.trail)
	}

	conflictLevel := confNode.Level
	if conflictLevel == 0 {
		return 0, nil, noLiteral, true
	}

	defer s.clearSeen()
	var out []Literal
	pathCount := 0
	reason := s.db.clause(confNode.Antecedent).literals
	trailIdx := len(s.trail) - 1
	var p Literal = noLiteral

	for {
		for _, q := range reason {
			v := q.variable(s.numVars)
			if s.seenVar[v] {
				continue
			}
			s.markSeen(v)
			switch {
			case s.varLevel[v] == conflictLevel:
				pathCount++
			case s.varLevel[v] > 0:
				out = append(out, q)
				if s.varLevel[v] > backtrackLevel {
					backtrackLevel = s.varLevel[v]
				}
			}
			// Literals falsified at level 0 are dropped: they are fixed
			// for the rest of the search, so they can never satisfy the
			// learned clause and keeping them would only make it longer.
		}

		for trailIdx >= 0 && !s.seenVar[s.trail[trailIdx].Var] {
			trailIdx--
		}
		v := s.trail[trailIdx].Var
		trailIdx--
		pathCount--

		if s.value[v] {
			p = posLiteral(v)
		} else {
			p = negLiteral(v, s.numVars)
		}
		if pathCount == 0 {
			break
		}
		reason = s.db.clause(s.antecedent[v]).literals
	}

	assertingLit = p.negate(s.numVars)
	out = append(out, assertingLit)

	if len(out) == 1 {
		return backtrackLevel, nil, assertingLit, false
	}
	return backtrackLevel, out, assertingLit, false
}
