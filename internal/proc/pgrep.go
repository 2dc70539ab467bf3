package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Pgrep shells out to `pgrep -f`.
type Pgrep struct {
	// Bin overrides the pgrep executable; empty means "pgrep" from PATH.
	Bin string
}

// Find runs `pgrep -f pattern`. Exit status 1 means no process matched.
func (p Pgrep) Find(ctx context.Context, pattern string) ([]Match, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, errors.New("process pattern must not be empty")
	}

	bin := p.Bin
	if bin == "" {
		bin = "pgrep"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-f", pattern)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		// pgrep exits 1 when nothing matched.
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && strings.TrimSpace(stderr.String()) == "" {
			return nil, nil
		}
		trimmed := strings.TrimSpace(stderr.String())
		if trimmed == "" {
			return nil, fmt.Errorf("%s -f %q failed: %w", bin, pattern, err)
		}
		return nil, fmt.Errorf("%s -f %q failed: %w (%s)", bin, pattern, err, trimmed)
	}

	return parsePgrepOutput(stdout.String()), nil
}

func parsePgrepOutput(out string) []Match {
	var matches []Match
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		matches = append(matches, Match{PID: line})
	}
	return matches
}
