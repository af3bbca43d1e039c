package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ndoherty-dev/cdclsat/internal/cdcl"
)

func writeCNF(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.cnf")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestCheckValiditySatisfyingAssignment(t *testing.T) {
	path := writeCNF(t, "p cnf 3 2\n1 2 0\n-2 3 0\n")
	ok, err := checkValidity(path, map[int]bool{1: true, 2: false, 3: false})
	if err != nil {
		t.Fatalf("checkValidity error: %v", err)
	}
	if !ok {
		t.Fatalf("checkValidity = false, want true")
	}
}

func TestCheckValidityUnsatisfiedClause(t *testing.T) {
	path := writeCNF(t, "p cnf 2 1\n1 2 0\n")
	ok, err := checkValidity(path, map[int]bool{1: false, 2: false})
	if err != nil {
		t.Fatalf("checkValidity error: %v", err)
	}
	if ok {
		t.Fatalf("checkValidity = true, want false")
	}
}

func TestCheckValidityStopsAtPercent(t *testing.T) {
	path := writeCNF(t, "p cnf 1 1\n1 0\n%\nthis is not a clause 0\n")
	ok, err := checkValidity(path, map[int]bool{1: true})
	if err != nil {
		t.Fatalf("checkValidity error: %v", err)
	}
	if !ok {
		t.Fatalf("checkValidity = false, want true")
	}
}

// TestRoundTripSolvedAssignmentPassesVerifier checks property 5: for every
// reported SAT result, the model the core solver produces must satisfy the
// original clauses under this package's own independent re-parse of the
// CNF file, not just under the solver's own bookkeeping.
func TestRoundTripSolvedAssignmentPassesVerifier(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-2, -3}}
	for _, dec := range []string{"ORDERED", "VSIDS", "MINISAT"} {
		s, err := cdcl.NewSolver(3, dec, "LUBY")
		if err != nil {
			t.Fatalf("[%s] NewSolver error: %v", dec, err)
		}
		for _, c := range clauses {
			if err := s.AddClause(c); err != nil {
				t.Fatalf("[%s] AddClause(%v) error: %v", dec, c, err)
			}
		}
		if outcome := s.Solve(); outcome != cdcl.Satisfiable {
			t.Fatalf("[%s] outcome = %v, want Satisfiable", dec, outcome)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "p cnf 3 %d\n", len(clauses))
		for _, c := range clauses {
			for _, lit := range c {
				fmt.Fprintf(&b, "%d ", lit)
			}
			b.WriteString("0\n")
		}
		path := writeCNF(t, b.String())

		ok, err := checkValidity(path, s.Assignment())
		if err != nil {
			t.Fatalf("[%s] checkValidity error: %v", dec, err)
		}
		if !ok {
			t.Fatalf("[%s] checkValidity rejected solver's own SAT assignment %v", dec, s.Assignment())
		}
	}
}

func TestCheckValidityMissingAssignmentVariableIsUnsatisfying(t *testing.T) {
	path := writeCNF(t, "p cnf 1 1\n1 0\n")
	ok, err := checkValidity(path, map[int]bool{})
	if err != nil {
		t.Fatalf("checkValidity error: %v", err)
	}
	if ok {
		t.Fatalf("checkValidity = true, want false when the only literal's variable is unassigned")
	}
}
