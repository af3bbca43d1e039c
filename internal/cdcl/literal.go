package cdcl

import "fmt"

// Literal is a signed Boolean variable encoded as an unsigned index suitable
// for array lookup. For a problem over variables [1, N], the positive
// literal for variable v is encoded as v itself; the negative literal ¬v is
// encoded as v+N. Literals thus occupy [1, 2N] and index 0 is never used, so
// the zero value of Literal can serve as a "no literal" sentinel.
type Literal int

// noLiteral is the sentinel stored in slots that do not refer to a literal.
const noLiteral Literal = 0

// posLiteral returns the literal encoding the positive occurrence of
// variable v.
func posLiteral(v int) Literal {
	return Literal(v)
}

// negLiteral returns the literal encoding the negative occurrence
// (negation) of variable v.
func negLiteral(v, numVars int) Literal {
	return Literal(v + numVars)
}

// literalOf translates a signed DIMACS literal (a nonzero integer whose
// absolute value is a variable id) into its internal encoding.
func literalOf(dimacsLit, numVars int) Literal {
	if dimacsLit < 0 {
		return negLiteral(-dimacsLit, numVars)
	}
	return posLiteral(dimacsLit)
}

// isNegative reports whether l encodes a negated variable, given the
// problem's variable count.
func (l Literal) isNegative(numVars int) bool {
	return int(l) > numVars
}

// variable returns the variable that l is built from.
func (l Literal) variable(numVars int) int {
	if l.isNegative(numVars) {
		return int(l) - numVars
	}
	return int(l)
}

// negate returns the opposite literal: ℓ+N if ℓ≤N, else ℓ−N.
func (l Literal) negate(numVars int) Literal {
	if l.isNegative(numVars) {
		return l - Literal(numVars)
	}
	return l + Literal(numVars)
}

// signedString renders l using DIMACS-style signed notation, relative to a
// known variable count.
func (l Literal) signedString(numVars int) string {
	if l.isNegative(numVars) {
		return fmt.Sprintf("-%d", l.variable(numVars))
	}
	return fmt.Sprintf("%d", l.variable(numVars))
}
