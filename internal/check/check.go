// Package check runs the layout setup diagnostic: window manager reachability
// first, companion script liveness second, then a summary.
package check

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rbright/layoutcheck/internal/proc"
)

// Exit codes returned by Run.
const (
	ExitOK          = 0
	ExitUnreachable = 1
)

// WorkspaceSource reports the workspace holding the focused window.
type WorkspaceSource interface {
	FocusedWorkspace(ctx context.Context) (string, error)
}

// Kind tags the outcome of a single check.
type Kind int

const (
	KindOK Kind = iota
	KindConnectionFailed
	KindToolInvocationFailed
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindConnectionFailed:
		return "connection_failed"
	case KindToolInvocationFailed:
		return "tool_invocation_failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ConnectivityResult is the outcome of reaching the window manager.
type ConnectivityResult struct {
	Kind      Kind
	Workspace string
	Err       error
}

// Connected reports whether the window manager answered.
func (r ConnectivityResult) Connected() bool {
	return r.Kind == KindOK
}

// LivenessResult is the outcome of looking for the companion script.
// KindOK with no PIDs means the lookup worked and nothing matched.
type LivenessResult struct {
	Kind Kind
	PIDs []string
	Err  error
}

// Running reports whether at least one companion process was found.
func (r LivenessResult) Running() bool {
	return r.Kind == KindOK && len(r.PIDs) > 0
}

// Paths are printed for operator reference; they are never read.
type Paths struct {
	I3Config string
	Script   string
}

// Runner wires the two checks to their collaborators and an output sink.
type Runner struct {
	Workspaces WorkspaceSource
	Processes  proc.Lister
	Pattern    string
	Paths      Paths
	Out        io.Writer
	Logger     zerolog.Logger
}

// CheckConnectivity asks the window manager for the focused workspace.
func (r Runner) CheckConnectivity(ctx context.Context) ConnectivityResult {
	p := newPrinter(r.Out)

	name, err := r.Workspaces.FocusedWorkspace(ctx)
	if err != nil {
		p.fail("Failed to connect to i3: %v", err)
		r.Logger.Warn().Err(err).Msg("window manager unreachable")
		return ConnectivityResult{Kind: KindConnectionFailed, Err: err}
	}

	p.ok("Successfully connected to i3")
	p.line("  Current workspace: %s", name)
	r.Logger.Info().Str("workspace", name).Msg("window manager reachable")
	return ConnectivityResult{Kind: KindOK, Workspace: name}
}

// CheckCompanion looks for a process whose command line contains Pattern.
func (r Runner) CheckCompanion(ctx context.Context) LivenessResult {
	p := newPrinter(r.Out)

	matches, err := r.Processes.Find(ctx, r.Pattern)
	if err != nil {
		p.fail("Error checking script status: %v", err)
		r.Logger.Warn().Err(err).Str("pattern", r.Pattern).Msg("process lookup failed")
		return LivenessResult{Kind: KindToolInvocationFailed, Err: err}
	}

	pids := proc.PIDs(matches)
	if len(pids) == 0 {
		p.fail("Alternating layout script is not running")
		r.Logger.Info().Str("pattern", r.Pattern).Msg("companion not running")
		return LivenessResult{Kind: KindOK}
	}

	p.ok("Alternating layout script is running")
	p.line("  PID: %s", strings.Join(pids, ", "))
	r.Logger.Info().Str("pattern", r.Pattern).Strs("pids", pids).Msg("companion running")
	return LivenessResult{Kind: KindOK, PIDs: pids}
}

// Run executes both checks in order and prints the summary. The companion
// check is skipped when the window manager is unreachable.
func (r Runner) Run(ctx context.Context) int {
	p := newPrinter(r.Out)
	p.line("Testing i3 alternating layout setup...")
	p.line("%s", rule)

	conn := r.CheckConnectivity(ctx)
	if !conn.Connected() {
		p.line("")
		p.info("i3 is not currently running. To test:")
		p.line("   1. Log out of your current session")
		p.line("   2. At the login screen, select 'i3' as your session")
		p.line("   3. Log back in and run this test script")
		r.Logger.Info().Str("outcome", conn.Kind.String()).Msg("diagnostic finished")
		return ExitUnreachable
	}

	live := r.CheckCompanion(ctx)

	p.line("")
	p.line("%s", rule)
	if live.Running() {
		p.ok("Setup appears to be working correctly!")
		p.line("")
		p.line("To test the functionality:")
		p.line("  1. Open a terminal (Super+Return)")
		p.line("  2. Open more terminals and observe the layout")
		p.line("  3. Windows should alternate between horizontal and vertical splits")
		p.line("     based on their dimensions")
	} else {
		p.warn("Setup is ready but script is not running yet.")
		p.line("")
		p.line("The script will start automatically when i3 starts.")
		p.line("If you're currently in i3 and it's not running, try:")
		p.line("  Super+Shift+R (restart i3)")
	}

	p.line("")
	p.line("Configuration file: %s", r.Paths.I3Config)
	p.line("Script location: %s", r.Paths.Script)

	r.Logger.Info().
		Str("outcome", live.Kind.String()).
		Bool("running", live.Running()).
		Msg("diagnostic finished")
	return ExitOK
}
