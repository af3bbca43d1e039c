// Package dimacs reads CNF formulas in DIMACS format and writes the brace-
// delimited assignment files the solver produces on a satisfiable run.
package dimacs

import (
	"fmt"
	"os"

	"github.com/rhartert/dimacs"
)

// Formula is a CNF formula as read off a DIMACS file: NumVars variables and a
// list of clauses, each a slice of signed, 1-indexed DIMACS literals.
type Formula struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int
}

// ReadFile parses filename as a DIMACS CNF file (§4.9, §6). It returns an
// error if the file does not open, the problem line is missing or not a
// "cnf" problem, or any clause line fails to parse.
func ReadFile(filename string) (*Formula, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", filename, err)
	}
	defer f.Close()

	b := &formulaBuilder{}
	if err := dimacs.ReadBuilder(f, b); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", filename, err)
	}
	if !b.sawProblem {
		return nil, fmt.Errorf("parsing %q: missing problem line", filename)
	}
	return &Formula{
		NumVars:    b.numVars,
		NumClauses: b.numClauses,
		Clauses:    b.clauses,
	}, nil
}

// formulaBuilder implements dimacs.Builder, accumulating the problem
// header and every clause line into a Formula.
type formulaBuilder struct {
	numVars, numClauses int
	clauses             [][]int
	sawProblem          bool
}

func (b *formulaBuilder) Problem(problem string, nVars, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want cnf", problem)
	}
	b.numVars = nVars
	b.numClauses = nClauses
	b.sawProblem = true
	return nil
}

func (b *formulaBuilder) Clause(tmpClause []int) error {
	b.clauses = append(b.clauses, append([]int(nil), tmpClause...))
	return nil
}

func (b *formulaBuilder) Comment(_ string) error {
	return nil
}
