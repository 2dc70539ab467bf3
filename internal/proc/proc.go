// Package proc finds running processes whose command line matches a pattern.
package proc

import (
	"context"
	"fmt"
	"strings"
)

// Match is one process whose command line contained the pattern.
type Match struct {
	PID     string
	Cmdline string
}

// Lister finds processes by command-line substring.
type Lister interface {
	Find(ctx context.Context, pattern string) ([]Match, error)
}

const (
	BackendPgrep  = "pgrep"
	BackendProcfs = "procfs"
)

// New returns the Lister implementation for backend.
func New(backend string) (Lister, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendPgrep, "":
		return Pgrep{}, nil
	case BackendProcfs:
		return Procfs{}, nil
	default:
		return nil, fmt.Errorf("unknown process backend %q (expected %s or %s)", backend, BackendPgrep, BackendProcfs)
	}
}

// PIDs extracts the identifiers of matches in order.
func PIDs(matches []Match) []string {
	pids := make([]string, 0, len(matches))
	for _, m := range matches {
		pids = append(pids, m.PID)
	}
	return pids
}
