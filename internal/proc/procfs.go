package proc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// Procfs scans the process table through gopsutil, without an external binary.
type Procfs struct{}

// Find scans the process table for command lines containing pattern.
func (Procfs) Find(ctx context.Context, pattern string) ([]Match, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, errors.New("process pattern must not be empty")
	}

	processes, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	self := int32(os.Getpid())
	var matches []Match
	for _, p := range processes {
		if p.Pid == self {
			continue
		}
		cmdline, err := p.CmdlineWithContext(ctx)
		if err != nil {
			continue // exited or not readable
		}
		if !strings.Contains(cmdline, pattern) {
			continue
		}
		matches = append(matches, Match{PID: strconv.Itoa(int(p.Pid)), Cmdline: cmdline})
	}
	return matches, nil
}
