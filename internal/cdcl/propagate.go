package cdcl

// propagate runs Boolean constraint propagation from the current trail
// cursor to fixpoint (§4.2). It returns conflict=true if some clause ran
// out of unfalsified literals and a conflict node was pushed onto the
// trail, ready for analyze. It returns restarted=true instead if the
// restart policy's threshold was hit first — in that case no conflict node
// is pushed at all, matching the restart-before-conflict ordering of the
// algorithm this implements. A conflict at level 0 never becomes a restart:
// its conflict node is always pushed, so analyze reports UNSAT.
func (s *Solver) propagate() (conflict, restarted bool) {
	for s.trailPos < len(s.trail) {
		n := s.trail[s.trailPos]
		s.trailPos++
		if n.isConflict() {
			continue
		}

		// The literal that just became false is whichever polarity of
		// n.Var disagrees with the value it was assigned.
		var falseLit Literal
		if n.Value {
			falseLit = negLiteral(n.Var, s.numVars)
		} else {
			falseLit = posLiteral(n.Var)
		}

		watchers := s.db.watchedBy[falseLit]
		for i := len(watchers) - 1; i >= 0; i-- {
			cid := watchers[i]
			c := s.db.clause(cid)
			other := c.otherWatch(falseLit)
			if s.literalTrue(other) {
				continue
			}

			replacement := s.findReplacement(c, falseLit)
			if replacement != noLiteral {
				c.replaceWatch(falseLit, replacement)
				watchers[i] = watchers[len(watchers)-1]
				watchers = watchers[:len(watchers)-1]
				s.db.watch(replacement, cid)
				continue
			}

			if !s.literalAssigned(other) {
				v := other.variable(s.numVars)
				value := !other.isNegative(s.numVars)
				s.assign(v, value, s.level, cid)
				s.stats.NumImplications++
				continue
			}

			// other is assigned false too: every literal of c is now
			// false. Check the restart policy before committing to a
			// conflict node, matching the reference ordering; a level-0
			// conflict skips the check because it proves UNSAT.
			s.db.watchedBy[falseLit] = watchers
			if n.Level > 0 && s.restart.onConflict() {
				return false, true
			}
			s.pushConflict(n.Level, cid)
			return true, false
		}
		s.db.watchedBy[falseLit] = watchers
	}
	return false, false
}

// findReplacement scans c for a literal, other than its two current
// watches, that is unassigned or already satisfied — a candidate to take
// over watching from falseLit. It returns noLiteral if every other literal
// of c is false.
func (s *Solver) findReplacement(c *clause, falseLit Literal) Literal {
	for _, l := range c.literals {
		if l == c.w1 || l == c.w2 {
			continue
		}
		if !s.literalFalse(l) {
			return l
		}
	}
	return noLiteral
}
