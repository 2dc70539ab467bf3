// Package doctor runs environment readiness diagnostics for the window manager,
// process tooling, and the companion script installation.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rbright/layoutcheck/internal/config"
	"github.com/rbright/layoutcheck/internal/i3ipc"
	"github.com/rbright/layoutcheck/internal/proc"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// WindowManager is the IPC surface the doctor needs.
type WindowManager interface {
	Socket(ctx context.Context) (string, error)
	Version(ctx context.Context) (i3ipc.Version, error)
}

// Run executes environment checks for a loaded config.
func Run(ctx context.Context, cfg config.Loaded, wm WindowManager) Report {
	checks := []Check{}

	configMsg := fmt.Sprintf("loaded %q", cfg.Path)
	if !cfg.Exists {
		configMsg = fmt.Sprintf("%q not found; using defaults", cfg.Path)
	}
	checks = append(checks, Check{Name: "config", Pass: true, Message: configMsg})

	socketCheck := checkSocket(ctx, wm)
	checks = append(checks, socketCheck)
	if socketCheck.Pass {
		checks = append(checks, checkVersion(ctx, wm))
	} else {
		checks = append(checks, Check{Name: "wm.version", Pass: false, Message: "skipped: no IPC socket"})
	}

	if strings.EqualFold(strings.TrimSpace(cfg.Config.Companion.Backend), proc.BackendPgrep) {
		checks = append(checks, checkBinary("pgrep", "process lookup backend"))
	}

	checks = append(checks, checkI3Config(cfg.Config.Paths.I3Config, cfg.Config.Companion.Pattern))
	checks = append(checks, checkFile("script", cfg.Config.Paths.Script))

	return Report{Checks: checks}
}

// checkSocket validates that an IPC socket path can be discovered.
func checkSocket(ctx context.Context, wm WindowManager) Check {
	path, err := wm.Socket(ctx)
	if err != nil {
		return Check{Name: "wm.socket", Pass: false, Message: err.Error()}
	}
	return Check{Name: "wm.socket", Pass: true, Message: fmt.Sprintf("found %s", path)}
}

// checkVersion asks the running window manager for its version.
func checkVersion(ctx context.Context, wm WindowManager) Check {
	v, err := wm.Version(ctx)
	if err != nil {
		return Check{Name: "wm.version", Pass: false, Message: fmt.Sprintf("request failed: %v", err)}
	}
	human := strings.TrimSpace(v.HumanReadable)
	if human == "" {
		human = fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return Check{Name: "wm.version", Pass: true, Message: human}
}

// checkBinary validates that a binary exists in PATH.
func checkBinary(bin string, okMsg string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: bin, Pass: false, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: bin, Pass: true, Message: fmt.Sprintf("found at %s (%s)", path, okMsg)}
}

// checkI3Config validates that the i3 config exists and starts the companion.
func checkI3Config(path string, pattern string) Check {
	resolved, err := config.ExpandHome(path)
	if err != nil {
		return Check{Name: "i3.config", Pass: false, Message: err.Error()}
	}
	content, err := os.ReadFile(resolved)
	if err != nil {
		return Check{Name: "i3.config", Pass: false, Message: fmt.Sprintf("cannot read %s: %v", resolved, err)}
	}
	if !strings.Contains(string(content), pattern) {
		return Check{Name: "i3.config", Pass: false, Message: fmt.Sprintf("%s does not reference %s", resolved, pattern)}
	}
	return Check{Name: "i3.config", Pass: true, Message: fmt.Sprintf("%s references %s", resolved, pattern)}
}

// checkFile validates that a regular file exists.
func checkFile(name string, path string) Check {
	resolved, err := config.ExpandHome(path)
	if err != nil {
		return Check{Name: name, Pass: false, Message: err.Error()}
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("missing %s", resolved)}
	}
	if info.IsDir() {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("%s is a directory", resolved)}
	}
	return Check{Name: name, Pass: true, Message: fmt.Sprintf("found %s", resolved)}
}
