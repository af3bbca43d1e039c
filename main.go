package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ndoherty-dev/cdclsat/internal/cdcl"
	"github.com/ndoherty-dev/cdclsat/internal/dimacs"
)

type config struct {
	log          bool
	decider      string
	restarter    string
	instanceFile string
}

func parseConfig(args []string) (*config, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("usage: %s <log: true|false> <decider: ORDERED|VSIDS|MINISAT> <restarter: None|GEOMETRIC|LUBY> <input_file>", os.Args[0])
	}
	verbose, err := strconv.ParseBool(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid log flag %q: %w", args[0], err)
	}
	return &config{
		log:          verbose,
		decider:      args[1],
		restarter:    args[2],
		instanceFile: args[3],
	}, nil
}

func run(cfg *config) error {
	readStart := time.Now()
	formula, err := dimacs.ReadFile(cfg.instanceFile)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}
	readTime := time.Since(readStart)

	s, err := cdcl.NewSolver(formula.NumVars, cfg.decider, cfg.restarter)
	if err != nil {
		return err // configuration error: unknown decider or restarter
	}
	if cfg.log {
		restarts := 0
		s.OnRestart = func() {
			restarts++
			fmt.Printf("c restart %d\n", restarts)
		}
	}

	for _, clause := range formula.Clauses {
		if err := s.AddClause(clause); err != nil {
			return fmt.Errorf("could not add clause: %w", err)
		}
	}

	solveStart := time.Now()
	outcome := s.Solve()
	s.SetReadTime(readTime)
	s.SetCompleteTime(readTime + time.Since(solveStart))

	base := basename(cfg.instanceFile)
	stats := s.Stats()
	statsBlock := formatStats(stats)

	fmt.Println(outcome)
	fmt.Print(statsBlock)

	if err := os.WriteFile(fmt.Sprintf("stats_%s.txt", base), []byte(outcome.String()+"\n"+statsBlock), 0644); err != nil {
		return fmt.Errorf("could not write statistics file: %w", err)
	}

	if outcome == cdcl.Satisfiable {
		assignPath := fmt.Sprintf("assgn_%s.txt", base)
		if err := dimacs.WriteAssignment(assignPath, formula.NumVars, s.Assignment()); err != nil {
			return fmt.Errorf("could not write assignment file: %w", err)
		}
	}
	return nil
}

func basename(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func formatStats(st cdcl.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "c variables:        %d\n", st.NumVars)
	fmt.Fprintf(&b, "c orig clauses:     %d\n", st.NumOrigClauses)
	fmt.Fprintf(&b, "c clauses:          %d\n", st.NumClauses)
	fmt.Fprintf(&b, "c learned clauses:  %d\n", st.NumLearnedClauses)
	fmt.Fprintf(&b, "c decisions:        %d\n", st.NumDecisions)
	fmt.Fprintf(&b, "c implications:     %d\n", st.NumImplications)
	fmt.Fprintf(&b, "c restarts:         %d\n", st.Restarts)
	fmt.Fprintf(&b, "c read time:        %s\n", st.ReadTime)
	fmt.Fprintf(&b, "c bcp time:         %s\n", st.BCPTime)
	fmt.Fprintf(&b, "c decide time:      %s\n", st.DecideTime)
	fmt.Fprintf(&b, "c analyze time:     %s\n", st.AnalyzeTime)
	fmt.Fprintf(&b, "c backtrack time:   %s\n", st.BacktrackTime)
	fmt.Fprintf(&b, "c complete time:    %s\n", st.CompleteTime)
	return b.String()
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
