// Command verify is the independent satisfying-assignment checker the core
// solver treats as an external collaborator (§6): it re-reads the original
// DIMACS file and the assignment file the solver wrote, and confirms every
// clause has at least one satisfied literal.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ndoherty-dev/cdclsat/internal/dimacs"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <cnf_file> <assignment_file>\n", os.Args[0])
		os.Exit(1)
	}
	cnfPath, assignPath := os.Args[1], os.Args[2]

	assignment, err := dimacs.ReadAssignment(assignPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ok, err := checkValidity(cnfPath, assignment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if ok {
		fmt.Println("YES!! The assignment is valid.")
	} else {
		fmt.Println("NO!! The assignment is not valid.")
		os.Exit(1)
	}
}

// checkValidity re-parses the CNF clause by clause and reports whether
// assignment satisfies every one of them. A variable missing from
// assignment satisfies nothing: its literal is treated as neither true nor
// false (§6).
func checkValidity(cnfPath string, assignment map[int]bool) (bool, error) {
	f, err := os.Open(cnfPath)
	if err != nil {
		return false, fmt.Errorf("opening %q: %w", cnfPath, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "c"):
			continue
		case strings.HasPrefix(line, "p"):
			continue
		case strings.HasPrefix(line, "%"):
			return true, nil
		}

		satisfied := false
		for _, tok := range strings.Fields(line) {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return false, fmt.Errorf("invalid literal %q", tok)
			}
			if lit == 0 {
				break
			}
			v := lit
			if v < 0 {
				v = -v
			}
			value, ok := assignment[v]
			if !ok {
				continue
			}
			if (lit > 0 && value) || (lit < 0 && !value) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false, nil
		}
	}
	if err := sc.Err(); err != nil {
		return false, fmt.Errorf("scanning %q: %w", cnfPath, err)
	}
	return true, nil
}
