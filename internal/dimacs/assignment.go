package dimacs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteAssignment writes assignment as the brace-delimited mapping
// `{"v": true|false, ...}` the solver emits on a satisfiable run (§6),
// ordered by variable number.
func WriteAssignment(filename string, numVars int, assignment map[int]bool) error {
	var b strings.Builder
	b.WriteByte('{')
	for v := 1; v <= numVars; v++ {
		if v > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %t", strconv.Itoa(v), assignment[v])
	}
	b.WriteByte('}')
	return os.WriteFile(filename, []byte(b.String()), 0644)
}

// ReadAssignment parses an assignment file back into a variable -> value
// map. It strips the JSON-ish punctuation rather than running it through a
// full JSON decoder, since the format is a flat mapping of quoted integer
// keys to bare booleans, never nested.
func ReadAssignment(filename string) (map[int]bool, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", filename, err)
	}

	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '{', '}', '"', ',', ':':
			return ' '
		default:
			return r
		}
	}, string(data))

	toks := strings.Fields(stripped)
	if len(toks)%2 != 0 {
		return nil, fmt.Errorf("parsing %q: malformed key/value pairs", filename)
	}

	assignment := make(map[int]bool, len(toks)/2)
	for i := 0; i < len(toks); i += 2 {
		v, err := strconv.Atoi(toks[i])
		if err != nil {
			return nil, fmt.Errorf("parsing %q: invalid variable %q", filename, toks[i])
		}
		value, err := strconv.ParseBool(toks[i+1])
		if err != nil {
			return nil, fmt.Errorf("parsing %q: invalid value %q for variable %d", filename, toks[i+1], v)
		}
		assignment[v] = value
	}
	return assignment, nil
}
